package dto

import (
	"iego3d/internal/ledger"

	"github.com/shopspring/decimal"
)

// Form types accepted by POST /cuentas.
const (
	FormPago             = "pago"
	FormGasto            = "gasto"
	FormGastoEdit        = "gasto_edit"
	FormPagoAyudanteEdit = "pago_ayudante_edit"
)

// CuentasForm is the url-encoded body of POST /cuentas. Numbers stay strings
// here; the service parses them so empty inputs can take their defaults.
type CuentasForm struct {
	FormType string `form:"form_type"`

	// form_type=pago
	Fecha            string `form:"fecha"`
	RevendedorID     string `form:"revendedor_id"`
	NombreParticular string `form:"nombre_particular"`
	Descripcion      string `form:"descripcion"`
	Monto            string `form:"monto"`
	Division         string `form:"division"`
	Dividir          string `form:"dividir"`
	Monto1           string `form:"monto1"`
	Division1        string `form:"division1"`
	Categoria1       string `form:"categoria1" validate:"omitempty,oneof=normal revendedor"`
	Monto2           string `form:"monto2"`
	Division2        string `form:"division2"`
	Categoria2       string `form:"categoria2" validate:"omitempty,oneof=normal revendedor"`

	// form_type=gasto, gasto_edit, pago_ayudante_edit
	GastoID          string `form:"gasto_id"`
	FechaGasto       string `form:"fecha_gasto"`
	DescripcionGasto string `form:"descripcion_gasto"`
	MontoGasto       string `form:"monto_gasto"`
	TipoGasto        string `form:"tipo_gasto" validate:"omitempty,oneof=gasto pago_ayudante"`
	EsFilamento      string `form:"es_filamento"`
}

type GastoResponse struct {
	ID          int64           `json:"id"`
	Fecha       string          `json:"fecha"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	EsFilamento bool            `json:"es_filamento"`
}

type RevendedorOpcion struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// CuentasResponse is the view-model of the monthly accounts page.
// With no months recorded MesSeleccionado is nil and every figure is zero.
type CuentasResponse struct {
	MesesDisponibles []string           `json:"meses_disponibles"`
	MesSeleccionado  *string            `json:"mes_seleccionado"`
	Grupos           []ledger.Grupo     `json:"grupos"`
	Totales          ledger.Totales     `json:"totales"`
	Resumen          ledger.Resumen     `json:"resumen"`
	Gastos           []GastoResponse    `json:"gastos"`
	PagosAyudante    []GastoResponse    `json:"pagos_ayudante"`
	Revendedores     []RevendedorOpcion `json:"revendedores"`
	// ParaFilamentoMes is the month's summed payment cost: the money set
	// aside to buy filament. Unrelated to Gasto.EsFilamento.
	ParaFilamentoMes decimal.Decimal `json:"para_filamento_mes"`
	Hoy              string          `json:"hoy"`
}

type BorrarGastoResponse struct {
	OK       bool  `json:"ok"`
	Borrados int64 `json:"borrados"`
}

type DashboardResponse struct {
	Mes                   string          `json:"mes"`
	GananciaMes           decimal.Decimal `json:"ganancia_mes"`
	GananciaIndividualMes decimal.Decimal `json:"ganancia_individual_mes"`
	PiezaMasVendida       *string         `json:"pieza_mas_vendida"`
	RevendedorTop         *string         `json:"revendedor_top"`
}
