package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a printed part held in stock.
// Activo=false is the soft-delete marker; rows are never physically removed.
type Producto struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	Nombre           string          `gorm:"index;not null"`
	TipoPieza        string          `gorm:"column:tipo_pieza"`
	Subtipo          string
	Stock            int             `gorm:"not null;default:0"`
	Precio           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioRevendedor decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notas            string
	Activo           bool `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Producto) TableName() string { return "productos" }
