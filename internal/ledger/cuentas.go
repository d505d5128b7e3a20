package ledger

import (
	"cmp"
	"slices"

	"iego3d/internal/model"

	"github.com/shopspring/decimal"
)

var dos = decimal.NewFromInt(2)

// escalaCosto is the scale costo is kept at. Ganancia is exact from there and
// GananciaIndividual needs one more place, all within the pago columns.
const escalaCosto = 6

// Derivados are the figures stored next to every payment row.
type Derivados struct {
	Division           int
	Costo              decimal.Decimal
	Ganancia           decimal.Decimal
	GananciaIndividual decimal.Decimal
}

// CalcularPago splits a payment into material cost and profit.
// A division below 1 is treated as 1. Costo keeps escalaCosto places so
// monthly sums match the plain quotient; rounding is left to display.
func CalcularPago(monto decimal.Decimal, division int) Derivados {
	if division < 1 {
		division = 1
	}
	costo := monto.Div(decimal.NewFromInt(int64(division))).Round(escalaCosto)
	ganancia := monto.Sub(costo)
	return Derivados{
		Division:           division,
		Costo:              costo,
		Ganancia:           ganancia,
		GananciaIndividual: ganancia.Div(dos),
	}
}

// Aplicar writes the derived figures of p.Monto and p.Division into p.
func Aplicar(p *model.Pago) {
	d := CalcularPago(p.Monto, p.Division)
	p.Division = d.Division
	p.Costo = d.Costo
	p.Ganancia = d.Ganancia
	p.GananciaIndividual = d.GananciaIndividual
}

// MesClave returns the YYYY-MM prefix of a YYYY-MM-DD date.
func MesClave(fecha string) string {
	if len(fecha) < 7 {
		return fecha
	}
	return fecha[:7]
}

// SeleccionarMes returns pedido when it is one of disponibles, otherwise the
// first (most recent) entry. It returns "" when there are no months at all.
func SeleccionarMes(disponibles []string, pedido string) string {
	if pedido != "" && slices.Contains(disponibles, pedido) {
		return pedido
	}
	if len(disponibles) == 0 {
		return ""
	}
	return disponibles[0]
}

// PagoFila is a stored payment joined with its reseller's name.
type PagoFila struct {
	model.Pago
	RevendedorNombre *string
}

type Detalle struct {
	Monto           decimal.Decimal `json:"monto"`
	Division        int             `json:"division"`
	CategoriaPrecio string          `json:"categoria_precio"`
}

// Grupo is one submitted payment as the user sees it: rows that share date,
// client and description are summed back together.
type Grupo struct {
	IDs                []int64         `json:"ids"`
	Fecha              string          `json:"fecha"`
	TipoCliente        string          `json:"tipo_cliente"`
	RevendedorID       *int64          `json:"revendedor_id"`
	RevendedorNombre   *string         `json:"revendedor_nombre"`
	NombreParticular   *string         `json:"nombre_particular"`
	Descripcion        string          `json:"descripcion"`
	Monto              decimal.Decimal `json:"monto"`
	Costo              decimal.Decimal `json:"costo"`
	Ganancia           decimal.Decimal `json:"ganancia"`
	GananciaIndividual decimal.Decimal `json:"ganancia_individual"`
	Detalles           []Detalle       `json:"detalles"`
}

type Totales struct {
	Monto              decimal.Decimal `json:"monto"`
	Costo              decimal.Decimal `json:"costo"`
	Ganancia           decimal.Decimal `json:"ganancia"`
	GananciaIndividual decimal.Decimal `json:"ganancia_individual"`
}

type claveGrupo struct {
	fecha        string
	tipoCliente  string
	revendedorID int64
	conRev       bool
	particular   string
	conNombre    bool
	descripcion  string
}

func claveDe(p model.Pago) claveGrupo {
	k := claveGrupo{fecha: p.Fecha, tipoCliente: p.TipoCliente, descripcion: p.Descripcion}
	if p.RevendedorID != nil {
		k.revendedorID, k.conRev = *p.RevendedorID, true
	}
	if p.NombreParticular != nil {
		k.particular, k.conNombre = *p.NombreParticular, true
	}
	return k
}

// AgruparPagos groups the month's payment rows and sums the whole month.
// Groups are ordered by date desc, then by their highest id desc.
func AgruparPagos(rows []PagoFila) ([]Grupo, Totales) {
	var tot Totales
	idx := make(map[claveGrupo]int)
	grupos := make([]Grupo, 0)

	for _, r := range rows {
		det := Detalle{Monto: r.Monto, Division: max(r.Division, 1), CategoriaPrecio: r.CategoriaPrecio}
		k := claveDe(r.Pago)
		i, ok := idx[k]
		if !ok {
			idx[k] = len(grupos)
			grupos = append(grupos, Grupo{
				IDs:                []int64{r.ID},
				Fecha:              r.Fecha,
				TipoCliente:        r.TipoCliente,
				RevendedorID:       r.RevendedorID,
				RevendedorNombre:   r.RevendedorNombre,
				NombreParticular:   r.NombreParticular,
				Descripcion:        r.Descripcion,
				Monto:              r.Monto,
				Costo:              r.Costo,
				Ganancia:           r.Ganancia,
				GananciaIndividual: r.GananciaIndividual,
				Detalles:           []Detalle{det},
			})
		} else {
			g := &grupos[i]
			g.IDs = append(g.IDs, r.ID)
			g.Monto = g.Monto.Add(r.Monto)
			g.Costo = g.Costo.Add(r.Costo)
			g.Ganancia = g.Ganancia.Add(r.Ganancia)
			g.GananciaIndividual = g.GananciaIndividual.Add(r.GananciaIndividual)
			g.Detalles = append(g.Detalles, det)
		}

		tot.Monto = tot.Monto.Add(r.Monto)
		tot.Costo = tot.Costo.Add(r.Costo)
		tot.Ganancia = tot.Ganancia.Add(r.Ganancia)
		tot.GananciaIndividual = tot.GananciaIndividual.Add(r.GananciaIndividual)
	}

	slices.SortStableFunc(grupos, func(a, b Grupo) int {
		if c := cmp.Compare(b.Fecha, a.Fecha); c != 0 {
			return c
		}
		return cmp.Compare(slices.Max(b.IDs), slices.Max(a.IDs))
	})
	return grupos, tot
}

// Resumen is the month's reconciliation between the two partners and the helper.
type Resumen struct {
	GastosMes      decimal.Decimal `json:"gastos_mes"`
	PagadoAyudante decimal.Decimal `json:"pagado_ayudante"`
	GIBruta        decimal.Decimal `json:"gi_bruta"`
	GINeta         decimal.Decimal `json:"gi_neta"`
	Ayudante       decimal.Decimal `json:"ayudante"`
}

// TotalesGastos sums plain expenses (filament excluded) and helper payments.
func TotalesGastos(gastos []model.Gasto) (gastosMes, pagadoAyudante decimal.Decimal) {
	for _, g := range gastos {
		switch {
		case g.Tipo == model.GastoComun && !g.EsFilamento:
			gastosMes = gastosMes.Add(g.Monto)
		case g.Tipo == model.GastoPagoAyudante:
			pagadoAyudante = pagadoAyudante.Add(g.Monto)
		}
	}
	return gastosMes, pagadoAyudante
}

// Conciliar derives the net individual profit and what is still owed to the
// helper. Expenses are shared, so each partner carries half.
func Conciliar(giBruta, gastosMes, pagadoAyudante decimal.Decimal) Resumen {
	giNeta := giBruta.Sub(gastosMes.Div(dos))
	return Resumen{
		GastosMes:      gastosMes,
		PagadoAyudante: pagadoAyudante,
		GIBruta:        giBruta,
		GINeta:         giNeta,
		Ayudante:       giNeta.Sub(pagadoAyudante),
	}
}

// GananciaMes is income minus material cost minus plain expenses.
func GananciaMes(montos, costos, gastos decimal.Decimal) decimal.Decimal {
	return montos.Sub(costos).Sub(gastos)
}
