package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/model"
	"iego3d/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func TestIDsNumericos(t *testing.T) {
	cases := []struct {
		raw  string
		want []int64
		err  bool
	}{
		{`[1, "2", "x", 3.5, -4, true, null, " 5", "06"]`, []int64{1, 2, 6}, false},
		{`[]`, []int64{}, false},
		{``, nil, false},
		{`null`, nil, false},
		{`"1,2"`, nil, true},
		{`{"id": 1}`, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := idsNumericos(json.RawMessage(tc.raw))
			if tc.err {
				assert.Equal(t, "Formato de IDs inválido (no es lista).", apierror.Message(err))
				return
			}
			require.NoError(t, err)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPago_BorrarVarios(t *testing.T) {
	db := newTestDB(t)
	svc := NewPagoService(repository.NewPagoRepository(db), fijo("2025-06-15"))
	ctx := context.Background()
	rev := seedRevendedor(t, db, "Ana", "0")
	a := seedPagoRev(t, db, rev.ID, "2025-06-01", "10")
	b := seedPagoRev(t, db, rev.ID, "2025-06-01", "20")

	_, err := svc.BorrarVarios(ctx, json.RawMessage(`["x"]`))
	assert.Equal(t, "Lista de IDs vacía después de filtrar.", apierror.Message(err))

	_, err = svc.BorrarVarios(ctx, json.RawMessage(`[9999]`))
	assert.Equal(t, "No se encontró ningún pago con esos IDs.", apierror.Message(err))

	raw, _ := json.Marshal([]any{a.ID, formatID(b.ID), "basura"})
	n, err := svc.BorrarVarios(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestPago_Actualizar(t *testing.T) {
	db := newTestDB(t)
	svc := NewPagoService(repository.NewPagoRepository(db), fijo("2025-06-15"))
	ctx := context.Background()
	rev := seedRevendedor(t, db, "Ana", "0")
	p := seedPagoRev(t, db, rev.ID, "2025-05-01", "10")

	err := svc.Actualizar(ctx, p.ID, dto.ActualizarPagoRequest{
		NombreParticular: "Eva",
		Monto:            num("1000"),
		Division:         num("0"),
	})
	require.NoError(t, err)

	got, err := svc.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", got.Fecha)
	assert.Equal(t, "2025-06", got.MesClave)
	assert.Equal(t, model.ClienteParticular, got.TipoCliente)
	assert.Nil(t, got.RevendedorID)
	require.NotNil(t, got.NombreParticular)
	assert.Equal(t, "Eva", *got.NombreParticular)
	assert.Equal(t, model.CategoriaNormal, got.CategoriaPrecio)
	assert.Equal(t, 1, got.Division)
	assert.True(t, got.Costo.Equal(dec("1000")))
	assert.True(t, got.Ganancia.IsZero())

	err = svc.Actualizar(ctx, p.ID, dto.ActualizarPagoRequest{
		Fecha:            "2025-04-03",
		NombreParticular: "Eva",
		RevendedorID:     dto.IDOpcional{Valor: rev.ID, Presente: true},
		Monto:            num("900"),
		Division:         num("3"),
	})
	require.NoError(t, err)
	got, err = svc.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ClienteRevendedor, got.TipoCliente)
	assert.Nil(t, got.NombreParticular)
	assert.True(t, got.Costo.Equal(dec("300")))
	assert.True(t, got.GananciaIndividual.Equal(dec("300")))
}

func TestPago_ActualizarErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewPagoService(repository.NewPagoRepository(db), fijo("2025-06-15"))
	ctx := context.Background()

	err := svc.Actualizar(ctx, 1, dto.ActualizarPagoRequest{RevendedorID: dto.IDOpcional{Presente: true, Invalido: true}, Monto: num("1")})
	assert.Equal(t, "revendedor_id inválido", apierror.Message(err))

	err = svc.Actualizar(ctx, 1, dto.ActualizarPagoRequest{Monto: num("0")})
	assert.Equal(t, "El monto debe ser mayor a 0", apierror.Message(err))

	err = svc.Actualizar(ctx, 1, dto.ActualizarPagoRequest{Monto: num("5")})
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	_, err = svc.ObtenerPorID(ctx, 1)
	assert.Equal(t, "Pago no encontrado", apierror.Message(err))
}

func TestGasto_Borrar(t *testing.T) {
	db := newTestDB(t)
	svc := NewGastoService(repository.NewGastoRepository(db))
	g := &model.Gasto{Fecha: "2025-06-01", Tipo: model.GastoComun, Monto: dec("1"), MesClave: "2025-06"}
	require.NoError(t, db.Create(g).Error)

	n, err := svc.Borrar(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.Borrar(context.Background(), g.ID)
	assert.Equal(t, "No se encontró gasto con ese ID.", apierror.Message(err))
}
