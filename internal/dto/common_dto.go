package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OKResponse is the body of successful mutations that return nothing else.
type OKResponse struct {
	OK bool `json:"ok"`
}

type CrearResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// IDOpcional is an id that clients send as a number, a numeric string, an
// empty string or null. Decoding never fails: a value that cannot be read as
// an integer sets Invalido instead.
type IDOpcional struct {
	Valor    int64
	Presente bool
	Invalido bool
}

func (o *IDOpcional) UnmarshalJSON(b []byte) error {
	*o = IDOpcional{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			o.Presente, o.Invalido = true, true
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		o.Presente = true
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			o.Invalido = true
			return nil
		}
		o.Valor = v
		return nil
	}

	o.Presente = true
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		o.Invalido = true
		return nil
	}
	// Fractional numbers are truncated, like an int() conversion.
	o.Valor = d.IntPart()
	return nil
}

func (o IDOpcional) MarshalJSON() ([]byte, error) {
	if !o.Presente || o.Invalido {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(o.Valor, 10)), nil
}

// Ptr returns the id, or nil when none was sent or it was unreadable.
func (o IDOpcional) Ptr() *int64 {
	if !o.Presente || o.Invalido {
		return nil
	}
	v := o.Valor
	return &v
}

// Numero is a decimal that clients may also send as a numeric string, an
// empty string or null. Blank values decode to zero.
type Numero struct {
	decimal.Decimal
}

func (n *Numero) UnmarshalJSON(b []byte) error {
	n.Decimal = decimal.Zero
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
	}
	return n.Decimal.UnmarshalJSON(b)
}

// NumeroDe wraps d.
func NumeroDe(d decimal.Decimal) Numero { return Numero{Decimal: d} }

// BorrarRequest is the body of the single-row delete endpoints: {"id": ...}.
type BorrarRequest struct {
	ID IDOpcional `json:"id"`
}
