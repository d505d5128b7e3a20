package model

import "github.com/shopspring/decimal"

// Categorias de precio of a payment.
const (
	CategoriaNormal     = "normal"
	CategoriaRevendedor = "revendedor"
)

// Pago is one stored income row. A single submitted payment may be split in
// two rows sharing fecha/cliente/descripcion; they are regrouped on read.
//
// Costo, Ganancia and GananciaIndividual are derived from Monto and Division
// when the row is written (see ledger.CalcularPago).
type Pago struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement"`
	Fecha              string  `gorm:"type:varchar(10);not null"`
	TipoCliente        string  `gorm:"type:varchar(20);not null"`
	RevendedorID       *int64  `gorm:"index"`
	NombreParticular   *string `gorm:"column:nombre_particular"`
	Descripcion        string
	CategoriaPrecio    string          `gorm:"type:varchar(20);not null"`
	Monto              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Division           int             `gorm:"not null;default:1"`
	Costo              decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Ganancia           decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	GananciaIndividual decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	MesClave           string          `gorm:"type:varchar(7);not null;index"` // YYYY-MM
}

func (Pago) TableName() string { return "pagos" }
