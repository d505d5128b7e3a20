package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ActualizarPagoRequest replaces a stored payment row. An empty revendedor_id
// makes it a particular payment.
type ActualizarPagoRequest struct {
	Fecha            string     `json:"fecha"`
	Descripcion      string     `json:"descripcion"`
	NombreParticular string     `json:"nombre_particular"`
	CategoriaPrecio  string     `json:"categoria_precio" validate:"omitempty,oneof=normal revendedor"`
	RevendedorID     IDOpcional `json:"revendedor_id"`
	Monto            Numero     `json:"monto"`
	Division         Numero     `json:"division"`
}

// BorrarPagosRequest keeps ids raw: non-numeric entries are dropped, not rejected.
type BorrarPagosRequest struct {
	IDs json.RawMessage `json:"ids"`
}

type PagoResponse struct {
	ID                 int64           `json:"id"`
	Fecha              string          `json:"fecha"`
	TipoCliente        string          `json:"tipo_cliente"`
	RevendedorID       *int64          `json:"revendedor_id"`
	NombreParticular   *string         `json:"nombre_particular"`
	Descripcion        string          `json:"descripcion"`
	CategoriaPrecio    string          `json:"categoria_precio"`
	Monto              decimal.Decimal `json:"monto"`
	Division           int             `json:"division"`
	Costo              decimal.Decimal `json:"costo"`
	Ganancia           decimal.Decimal `json:"ganancia"`
	GananciaIndividual decimal.Decimal `json:"ganancia_individual"`
	MesClave           string          `json:"mes_clave"`
}

type PagoDetalleResponse struct {
	OK   bool         `json:"ok"`
	Pago PagoResponse `json:"pago"`
}

type BorrarPagosResponse struct {
	OK       bool  `json:"ok"`
	Borrados int64 `json:"borrados"`
}
