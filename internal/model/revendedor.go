package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revendedor is a reseller with a running account.
// The current balance is never stored: it is derived from SaldoInicial plus
// deliveries minus payments (positive = the reseller owes us).
type Revendedor struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Nombre       string `gorm:"index;not null"`
	Contacto     string
	Notas        string
	SaldoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activo       bool            `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Revendedor) TableName() string { return "revendedores" }
