package ledger

import (
	"testing"

	"iego3d/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCalcularPago(t *testing.T) {
	d := CalcularPago(dec("1000"), 2)
	assert.True(t, d.Costo.Equal(dec("500")))
	assert.True(t, d.Ganancia.Equal(dec("500")))
	assert.True(t, d.GananciaIndividual.Equal(dec("250")))
	assert.Equal(t, 2, d.Division)
}

func TestCalcularPago_CoercesDivision(t *testing.T) {
	for _, div := range []int{0, -3} {
		d := CalcularPago(dec("900"), div)
		assert.Equal(t, 1, d.Division)
		assert.True(t, d.Costo.Equal(dec("900")))
		assert.True(t, d.Ganancia.IsZero())
	}
}

func TestCalcularPago_ProfitIdentities(t *testing.T) {
	cases := []struct {
		monto string
		div   int
	}{
		{"1000", 3}, {"0.01", 7}, {"12345.67", 4}, {"999.99", 2},
	}
	for _, tc := range cases {
		m := dec(tc.monto)
		d := CalcularPago(m, tc.div)
		assert.True(t, d.Ganancia.Equal(m.Sub(d.Costo)), tc.monto)
		assert.True(t, d.GananciaIndividual.Mul(decimal.NewFromInt(2)).Equal(d.Ganancia), tc.monto)
	}
}

func TestCalcularPago_KeepsQuotientPrecision(t *testing.T) {
	d := CalcularPago(dec("1000"), 3)
	assert.True(t, d.Costo.Equal(dec("333.333333")), d.Costo.String())
	assert.True(t, d.Ganancia.Equal(dec("666.666667")), d.Ganancia.String())
	assert.True(t, d.GananciaIndividual.Equal(dec("333.3333335")), d.GananciaIndividual.String())

	_, tot := AgruparPagos([]PagoFila{
		fila(1, "2025-06-01", "a", nil, "1000", 3),
		fila(2, "2025-06-02", "b", nil, "1000", 3),
		fila(3, "2025-06-03", "c", nil, "1000", 3),
	})
	assert.Equal(t, "1000.00", tot.Costo.StringFixed(2))
}

func TestSeleccionarMes(t *testing.T) {
	disp := []string{"2025-05", "2025-04", "2024-12"}
	assert.Equal(t, "2025-04", SeleccionarMes(disp, "2025-04"))
	assert.Equal(t, "2025-05", SeleccionarMes(disp, "2023-01"))
	assert.Equal(t, "2025-05", SeleccionarMes(disp, ""))
	assert.Equal(t, "", SeleccionarMes(nil, "2025-04"))
}

func TestMesClave(t *testing.T) {
	assert.Equal(t, "2025-03", MesClave("2025-03-14"))
	assert.Equal(t, "2025", MesClave("2025"))
}

func fila(id int64, fecha, desc string, rev *int64, monto string, div int) PagoFila {
	p := model.Pago{
		ID: id, Fecha: fecha, Descripcion: desc, RevendedorID: rev,
		TipoCliente: model.ClienteParticular, CategoriaPrecio: model.CategoriaNormal,
		Monto: dec(monto), Division: div,
	}
	if rev != nil {
		p.TipoCliente = model.ClienteRevendedor
	}
	Aplicar(&p)
	return PagoFila{Pago: p}
}

func TestAgruparPagos_MergesSplitRows(t *testing.T) {
	rows := []PagoFila{
		fila(5, "2025-03-10", "lote", ptr(int64(1)), "600", 2),
		fila(4, "2025-03-10", "lote", ptr(int64(1)), "400", 4),
		fila(3, "2025-03-02", "otro", nil, "100", 1),
		fila(6, "2025-03-02", "otro", ptr(int64(1)), "50", 1),
	}

	grupos, tot := AgruparPagos(rows)
	require.Len(t, grupos, 3)

	assert.Equal(t, []int64{5, 4}, grupos[0].IDs)
	assert.True(t, grupos[0].Monto.Equal(dec("1000")))
	assert.True(t, grupos[0].Costo.Equal(dec("400")))
	require.Len(t, grupos[0].Detalles, 2)
	assert.Equal(t, 4, grupos[0].Detalles[1].Division)

	// same date: the group holding the highest id comes first
	assert.Equal(t, []int64{6}, grupos[1].IDs)
	assert.Equal(t, []int64{3}, grupos[2].IDs)

	assert.True(t, tot.Monto.Equal(dec("1150")))
	assert.True(t, tot.Costo.Equal(dec("550")))
	assert.True(t, tot.Ganancia.Equal(dec("600")))
	assert.True(t, tot.GananciaIndividual.Equal(dec("300")))
}

func TestAgruparPagos_Empty(t *testing.T) {
	grupos, tot := AgruparPagos(nil)
	assert.Empty(t, grupos)
	assert.True(t, tot.Monto.IsZero())
}

func TestTotalesGastos_ExcludesFilamentFromExpenses(t *testing.T) {
	gastos := []model.Gasto{
		{Tipo: model.GastoComun, Monto: dec("200")},
		{Tipo: model.GastoComun, Monto: dec("80"), EsFilamento: true},
		{Tipo: model.GastoPagoAyudante, Monto: dec("100")},
		{Tipo: model.GastoPagoAyudante, Monto: dec("5"), EsFilamento: true},
	}
	g, a := TotalesGastos(gastos)
	assert.True(t, g.Equal(dec("200")))
	assert.True(t, a.Equal(dec("105")))
}

func TestConciliar(t *testing.T) {
	r := Conciliar(dec("250"), dec("200"), dec("100"))
	assert.True(t, r.GINeta.Equal(dec("150")))
	assert.True(t, r.Ayudante.Equal(dec("50")))

	zero := Conciliar(decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, zero.GINeta.IsZero())
	assert.True(t, zero.Ayudante.IsZero())
}

func TestGananciaMes(t *testing.T) {
	assert.True(t, GananciaMes(dec("1000"), dec("400"), dec("100")).Equal(dec("500")))
}
