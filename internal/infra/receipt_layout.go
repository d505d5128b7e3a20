package infra

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Font sizes of the delivery receipt, in points.
const (
	tituloPt      = 36
	etiquetaPt    = 18
	valorPt       = 24
	cabeceraPt    = 20
	articuloPt    = 30
	numeroPt      = 18
	totalLabelPt  = 22
	totalValorPt  = 26
	paddingColPt  = 12
	minCantidadMM = 16
	minPrecioMM   = 26
	minTotalMM    = 28
	minArticuloMM = 60
)

// pt converts points to millimetres.
func pt(v float64) float64 { return v * 25.4 / 72 }

// Linea is one row of the receipt table.
type Linea struct {
	Pieza    string
	Cantidad int
	Precio   decimal.Decimal
	Total    decimal.Decimal
}

// Anchos are the table column widths in millimetres.
type Anchos struct {
	Articulo float64
	Cantidad float64
	Precio   float64
	Total    float64
}

// Medidor returns the rendered width in millimetres of texto at the given
// font size in points.
type Medidor func(texto string, puntos float64) float64

// CalcularAnchos sizes the numeric columns to their widest text (header
// included) plus padding, never below their floors. The total column also fits
// the grand total in the larger total font. Articulo takes what is left of
// disponible.
func CalcularAnchos(lineas []Linea, disponible float64, medir Medidor) Anchos {
	pad := pt(paddingColPt)
	columna := func(cabecera string, celdas []string) float64 {
		w := medir(cabecera, cabeceraPt)
		for _, c := range celdas {
			w = max(w, medir(c, numeroPt))
		}
		return w + pad
	}

	cantidades := []string{"0"}
	precios := []string{"$ 0"}
	totales := []string{"$ 0"}
	if len(lineas) > 0 {
		cantidades, precios, totales = cantidades[:0], precios[:0], totales[:0]
	}
	suma := decimal.Zero
	for _, l := range lineas {
		cantidades = append(cantidades, strconv.Itoa(l.Cantidad))
		precios = append(precios, FormatearMonto(l.Precio))
		totales = append(totales, FormatearMonto(l.Total))
		suma = suma.Add(l.Total)
	}

	a := Anchos{
		Cantidad: max(minCantidadMM, columna("C", cantidades)),
		Precio:   max(minPrecioMM, columna("Precio", precios)),
		Total: max(minTotalMM,
			columna("Total", totales),
			medir(FormatearMonto(suma), totalValorPt)+pad),
	}
	a.Articulo = max(minArticuloMM, disponible-(a.Cantidad+a.Precio+a.Total))
	return a
}

var montoPrinter = message.NewPrinter(language.Spanish)

// FormatearMonto renders an amount as "$ 12.345": rounded half-to-even to
// whole pesos with the Spanish thousands separator.
func FormatearMonto(d decimal.Decimal) string {
	return "$ " + montoPrinter.Sprintf("%d", d.RoundBank(0).IntPart())
}

// FormatearFecha turns YYYY-MM-DD into D/M/YYYY. Unparsable input is
// returned unchanged.
func FormatearFecha(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return t.Format("2/1/2006")
}

var (
	reIndice     = regexp.MustCompile(`^[\s\p{Zs}]*\p{Nd}+[\s\p{Zs}]*[-–.)_]*[\s\p{Zs}]*`)
	rePuntos     = regexp.MustCompile(`^\.+`)
	reNoPalabra  = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
	mayusculasES = cases.Upper(language.Spanish)
)

// SanitizeCliente removes ordering prefixes typed in front of a client name,
// e.g. "12 - Juan" or "...-Ana".
func SanitizeCliente(raw string) string {
	s := strings.TrimSpace(reIndice.ReplaceAllString(raw, ""))
	s = strings.TrimSpace(rePuntos.ReplaceAllString(s, ""))
	return strings.TrimSpace(reNoPalabra.ReplaceAllString(s, ""))
}

// Mayusculas upper-cases a client name with Spanish casing rules.
func Mayusculas(s string) string { return mayusculasES.String(s) }
