package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest: only nombre is mandatory; missing or blank numbers
// default to 0.
type CrearProductoRequest struct {
	Nombre           string `json:"nombre"`
	TipoPieza        string `json:"tipo_pieza"`
	Subtipo          string `json:"subtipo"`
	Stock            Numero `json:"stock"`
	Precio           Numero `json:"precio"`
	PrecioRevendedor Numero `json:"precio_revendedor"`
	Notas            string `json:"notas"`
}

// ActualizarProductoRequest overwrites the product, so every field must be sent.
type ActualizarProductoRequest struct {
	Nombre           *string          `json:"nombre"            validate:"required"`
	TipoPieza        *string          `json:"tipo_pieza"        validate:"required"`
	Subtipo          *string          `json:"subtipo"           validate:"required"`
	Stock            *decimal.Decimal `json:"stock"             validate:"required"`
	Precio           *decimal.Decimal `json:"precio"            validate:"required"`
	PrecioRevendedor *decimal.Decimal `json:"precio_revendedor" validate:"required"`
	Notas            *string          `json:"notas"             validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               int64           `json:"id"`
	Nombre           string          `json:"nombre"`
	TipoPieza        string          `json:"tipo_pieza"`
	Subtipo          string          `json:"subtipo"`
	Stock            int             `json:"stock"`
	Precio           decimal.Decimal `json:"precio"`
	PrecioRevendedor decimal.Decimal `json:"precio_revendedor"`
	Notas            string          `json:"notas"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
