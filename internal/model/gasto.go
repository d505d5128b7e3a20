package model

import "github.com/shopspring/decimal"

// Tipos de gasto.
const (
	GastoComun        = "gasto"
	GastoPagoAyudante = "pago_ayudante"
)

// Gasto is a monthly outflow: a plain expense or a payment to the helper.
// EsFilamento only has meaning for Tipo=gasto; flagged rows are listed but
// left out of the reconciliation total.
type Gasto struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Fecha       string `gorm:"type:varchar(10);not null"`
	Tipo        string `gorm:"type:varchar(20);not null"`
	Descripcion string
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MesClave    string          `gorm:"type:varchar(7);not null;index"`
	EsFilamento bool            `gorm:"not null;default:false"`
}

func (Gasto) TableName() string { return "gastos" }

// All lists every persisted model, in creation order for AutoMigrate.
func All() []any {
	return []any{
		&Producto{},
		&Revendedor{},
		&Entrega{},
		&EntregaItem{},
		&Pago{},
		&Gasto{},
	}
}
