package service

import (
	"testing"
	"time"

	"iego3d/internal/dto"
	"iego3d/internal/infra"
	"iego3d/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func num(s string) dto.Numero { return dto.NumeroDe(dec(s)) }

func ptr[T any](v T) *T { return &v }

// newTestDB opens a fresh in-memory SQLite store with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// fijo is a Clock stopped at the given YYYY-MM-DD.
func fijo(fecha string) Clock {
	t, err := time.Parse(time.DateOnly, fecha)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func seedProducto(t *testing.T, db *gorm.DB, nombre string, stock int) *model.Producto {
	t.Helper()
	p := &model.Producto{Nombre: nombre, Stock: stock, Precio: dec("100"), PrecioRevendedor: dec("80"), Activo: true}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedRevendedor(t *testing.T, db *gorm.DB, nombre string, saldo string) *model.Revendedor {
	t.Helper()
	r := &model.Revendedor{Nombre: nombre, SaldoInicial: dec(saldo), Activo: true}
	require.NoError(t, db.Create(r).Error)
	return r
}

func stockDe(t *testing.T, db *gorm.DB, id int64) int {
	t.Helper()
	var p model.Producto
	require.NoError(t, db.First(&p, id).Error)
	return p.Stock
}
