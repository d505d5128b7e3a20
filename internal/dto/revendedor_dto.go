package dto

import (
	"time"

	"iego3d/internal/ledger"

	"github.com/shopspring/decimal"
)

type RevendedorRequest struct {
	Nombre       string `json:"nombre"`
	Contacto     string `json:"contacto"`
	Notas        string `json:"notas"`
	SaldoInicial Numero `json:"saldo_inicial"`
}

type RevendedorResponse struct {
	ID           int64           `json:"id"`
	Nombre       string          `json:"nombre"`
	Contacto     string          `json:"contacto"`
	Notas        string          `json:"notas"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
	// SaldoActual = saldo_inicial + entregas - pagos; positive means the reseller owes.
	SaldoActual decimal.Decimal `json:"saldo_actual"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type MovimientosResponse struct {
	OK          bool                `json:"ok"`
	Movimientos []ledger.Movimiento `json:"movimientos"`
}
