package dto

import "github.com/shopspring/decimal"

// PiezaRequest is one delivered line. Lines without a name or with a
// non-positive quantity are ignored. A blank or zero total defaults to
// cantidad × precio.
type PiezaRequest struct {
	ProductoID     IDOpcional `json:"producto_id"`
	NombrePieza    string     `json:"nombre_pieza"`
	Cantidad       Numero     `json:"cantidad"`
	PrecioUnitario Numero     `json:"precio_unitario"`
	Total          Numero     `json:"total"`
}

// CrearEntregaRequest: cantidad_total and total are derived from the accepted
// lines, so any values the client sends for them are ignored.
type CrearEntregaRequest struct {
	TipoCliente   string         `json:"tipo_cliente"`
	RevendedorID  IDOpcional     `json:"revendedor_id"`
	ClienteNombre string         `json:"cliente_nombre"`
	Fecha         string         `json:"fecha"`
	Piezas        []PiezaRequest `json:"piezas"`
}

type CrearEntregaResponse struct {
	OK        bool  `json:"ok"`
	EntregaID int64 `json:"entrega_id"`
}

type EntregaResponse struct {
	ID            int64           `json:"id"`
	Fecha         string          `json:"fecha"`
	TipoCliente   string          `json:"tipo_cliente"`
	RevendedorID  *int64          `json:"revendedor_id"`
	ClienteNombre string          `json:"cliente_nombre"`
	CantidadTotal int             `json:"cantidad_total"`
	Total         decimal.Decimal `json:"total"`
}

type EntregaItemResponse struct {
	ID             int64           `json:"id"`
	ProductoID     *int64          `json:"producto_id"`
	NombrePieza    string          `json:"nombre_pieza"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

type EntregaDetalleResponse struct {
	OK      bool                  `json:"ok"`
	Entrega EntregaResponse       `json:"entrega"`
	Items   []EntregaItemResponse `json:"items"`
}

type BorrarEntregaResponse struct {
	OK       bool  `json:"ok"`
	Borradas int64 `json:"borradas"`
}
