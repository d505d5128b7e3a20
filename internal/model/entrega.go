package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cliente shared by entregas and pagos.
const (
	ClienteRevendedor = "revendedor"
	ClienteParticular = "particular"
)

// Entrega is the header of a delivery. CantidadTotal and Total always equal the
// sums over Items; the service computes them, the database does not enforce it.
type Entrega struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Fecha         string `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	TipoCliente   string `gorm:"type:varchar(20);not null"`
	RevendedorID  *int64 `gorm:"index"`
	ClienteNombre string `gorm:"not null"`
	CantidadTotal int    `gorm:"not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time

	Items []EntregaItem `gorm:"foreignKey:EntregaID"`
}

func (Entrega) TableName() string { return "entregas" }

// EntregaItem is one delivered line. NombrePieza is a snapshot of the product
// name; ProductoID is nil for ad-hoc lines that do not touch stock.
type EntregaItem struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	EntregaID      int64  `gorm:"not null;index"`
	ProductoID     *int64 `gorm:"index"`
	NombrePieza    string `gorm:"not null"`
	Cantidad       int    `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (EntregaItem) TableName() string { return "entrega_items" }
