package service

import (
	"context"
	"testing"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/model"
	"iego3d/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCuentasSvc(db *gorm.DB, hoy string) CuentasService {
	return NewCuentasService(
		repository.NewPagoRepository(db),
		repository.NewGastoRepository(db),
		repository.NewRevendedorRepository(db),
		fijo(hoy),
	)
}

func TestCuentas_EmptyStore(t *testing.T) {
	svc := newCuentasSvc(newTestDB(t), "2025-06-15")

	v, err := svc.Vista(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, v.MesesDisponibles)
	assert.Nil(t, v.MesSeleccionado)
	assert.Empty(t, v.Grupos)
	assert.True(t, v.Resumen.GINeta.IsZero())
	assert.True(t, v.Resumen.Ayudante.IsZero())
	assert.Equal(t, "2025-06-15", v.Hoy)
}

func TestCuentas_MonthReconciliation(t *testing.T) {
	db := newTestDB(t)
	svc := newCuentasSvc(db, "2025-06-15")
	ctx := context.Background()

	// 1000 / 2 → costo 500, ganancia 500, gi 250.
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormPago, Fecha: "2025-06-01", NombreParticular: "Eva", Monto: "1000", Division: "2"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, FechaGasto: "2025-06-02", DescripcionGasto: "luz", MontoGasto: "200"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, FechaGasto: "2025-06-03", DescripcionGasto: "PLA", MontoGasto: "80", EsFilamento: "on"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, FechaGasto: "2025-06-04", MontoGasto: "100", TipoGasto: model.GastoPagoAyudante}))

	v, err := svc.Vista(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, v.MesSeleccionado)
	assert.Equal(t, "2025-06", *v.MesSeleccionado)

	require.Len(t, v.Grupos, 1)
	g := v.Grupos[0]
	assert.Equal(t, model.ClienteParticular, g.TipoCliente)
	require.NotNil(t, g.NombreParticular)
	assert.Equal(t, "Eva", *g.NombreParticular)
	assert.True(t, g.Costo.Equal(dec("500")))
	assert.True(t, g.GananciaIndividual.Equal(dec("250")))

	assert.True(t, v.ParaFilamentoMes.Equal(dec("500")))
	assert.True(t, v.Resumen.GastosMes.Equal(dec("200")), "filament expenses are listed but not reconciled")
	assert.True(t, v.Resumen.PagadoAyudante.Equal(dec("100")))
	assert.True(t, v.Resumen.GIBruta.Equal(dec("250")))
	assert.True(t, v.Resumen.GINeta.Equal(dec("150")))
	assert.True(t, v.Resumen.Ayudante.Equal(dec("50")))

	assert.Len(t, v.Gastos, 2)
	assert.Equal(t, "PLA", v.Gastos[0].Descripcion)
	require.Len(t, v.PagosAyudante, 1)
}

func TestCuentas_SplitPaymentIsOneGroup(t *testing.T) {
	db := newTestDB(t)
	svc := newCuentasSvc(db, "2025-06-15")
	ctx := context.Background()
	rev := seedRevendedor(t, db, "Ana", "0")

	form := dto.CuentasForm{
		FormType:     dto.FormPago,
		Fecha:        "2025-06-10",
		RevendedorID: formatID(rev.ID),
		Descripcion:  "pedido",
		Division:     "2",
		Dividir:      "on",
		Monto1:       "600",
		Monto2:       "400",
		Division2:    "4",
		Categoria2:   model.CategoriaNormal,
	}
	require.NoError(t, svc.Registrar(ctx, form))

	var filas []model.Pago
	require.NoError(t, db.Order("id").Find(&filas).Error)
	require.Len(t, filas, 2)
	assert.Equal(t, 2, filas[0].Division)
	assert.Equal(t, model.CategoriaRevendedor, filas[0].CategoriaPrecio)
	assert.Equal(t, 4, filas[1].Division)
	assert.Equal(t, model.CategoriaNormal, filas[1].CategoriaPrecio)
	assert.Nil(t, filas[0].NombreParticular)

	v, err := svc.Vista(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, v.Grupos, 1)
	g := v.Grupos[0]
	assert.Len(t, g.IDs, 2)
	assert.True(t, g.Monto.Equal(dec("1000")))
	assert.True(t, g.Costo.Equal(dec("400")), g.Costo.String())
	require.NotNil(t, g.RevendedorNombre)
	assert.Equal(t, "Ana", *g.RevendedorNombre)
	require.Len(t, v.Revendedores, 1)
}

func TestCuentas_SkipsNonPositiveAndParsesErrors(t *testing.T) {
	db := newTestDB(t)
	svc := newCuentasSvc(db, "2025-06-15")
	ctx := context.Background()

	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{Monto: "0"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, MontoGasto: ""}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: "desconocido", Monto: "50"}))

	var n int64
	require.NoError(t, db.Model(&model.Pago{}).Count(&n).Error)
	assert.Zero(t, n)

	err := svc.Registrar(ctx, dto.CuentasForm{Monto: "mil"})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	err = svc.Registrar(ctx, dto.CuentasForm{Monto: "10", Division: "x"})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	err = svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, MontoGasto: "1,5"})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestCuentas_DefaultDateAndMonthFallback(t *testing.T) {
	db := newTestDB(t)
	svc := newCuentasSvc(db, "2025-07-20")
	ctx := context.Background()

	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{Monto: "10"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGasto, FechaGasto: "2025-05-01", MontoGasto: "5"}))

	v, err := svc.Vista(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-07", "2025-05"}, v.MesesDisponibles)
	assert.Equal(t, "2025-07", *v.MesSeleccionado)
	require.Len(t, v.Grupos, 1)
	assert.Equal(t, "2025-07-20", v.Grupos[0].Fecha)

	v, err = svc.Vista(ctx, "2025-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-05", *v.MesSeleccionado)
	assert.Empty(t, v.Grupos)
	assert.Len(t, v.Gastos, 1)
}

func TestCuentas_EditOnlyMatchingTipo(t *testing.T) {
	db := newTestDB(t)
	svc := newCuentasSvc(db, "2025-06-15")
	ctx := context.Background()

	gasto := &model.Gasto{Fecha: "2025-06-01", Tipo: model.GastoComun, Descripcion: "luz", Monto: dec("100"), MesClave: "2025-06"}
	ayud := &model.Gasto{Fecha: "2025-06-01", Tipo: model.GastoPagoAyudante, Descripcion: "Leo", Monto: dec("50"), MesClave: "2025-06"}
	require.NoError(t, db.Create(gasto).Error)
	require.NoError(t, db.Create(ayud).Error)

	// Wrong tipo: the helper row is not touched.
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGastoEdit, GastoID: formatID(ayud.ID), FechaGasto: "2025-06-02", MontoGasto: "999"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGastoEdit, GastoID: formatID(gasto.ID), FechaGasto: "2025-06-03", DescripcionGasto: "gas", MontoGasto: "120", EsFilamento: "1"}))
	require.NoError(t, svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormPagoAyudanteEdit, GastoID: formatID(ayud.ID), FechaGasto: "2025-06-04", MontoGasto: "60", EsFilamento: "1"}))

	var g, a model.Gasto
	require.NoError(t, db.First(&g, gasto.ID).Error)
	require.NoError(t, db.First(&a, ayud.ID).Error)
	assert.Equal(t, "gas", g.Descripcion)
	assert.True(t, g.Monto.Equal(dec("120")))
	assert.True(t, g.EsFilamento)
	assert.True(t, a.Monto.Equal(dec("60")))
	assert.False(t, a.EsFilamento, "helper payments never carry the filament flag")

	err := svc.Registrar(ctx, dto.CuentasForm{FormType: dto.FormGastoEdit, GastoID: "abc", MontoGasto: "1"})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}
