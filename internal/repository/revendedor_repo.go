package repository

import (
	"context"

	"iego3d/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RevendedorRepository interface {
	Create(ctx context.Context, r *model.Revendedor) error
	FindActivoByID(ctx context.Context, id int64) (*model.Revendedor, error)
	ListActivos(ctx context.Context) ([]model.Revendedor, error)
	Update(ctx context.Context, r *model.Revendedor) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
	SoftDeleteTx(tx *gorm.DB, id int64) (int64, error)

	// CountHistorialTx counts deliveries and payments that reference the reseller,
	// whatever their tipo_cliente.
	CountHistorialTx(tx *gorm.DB, id int64) (entregas, pagos int64, err error)

	// SumEntregas and SumPagos return, per reseller id, the summed delivery totals and
	// payment amounts of tipo_cliente=revendedor rows.
	SumEntregas(ctx context.Context) (map[int64]decimal.Decimal, error)
	SumPagos(ctx context.Context) (map[int64]decimal.Decimal, error)

	DB() *gorm.DB
}

type revendedorRepo struct{ db *gorm.DB }

func NewRevendedorRepository(db *gorm.DB) RevendedorRepository { return &revendedorRepo{db: db} }

func (r *revendedorRepo) DB() *gorm.DB { return r.db }

func (r *revendedorRepo) Create(ctx context.Context, rev *model.Revendedor) error {
	rev.Activo = true
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *revendedorRepo) FindActivoByID(ctx context.Context, id int64) (*model.Revendedor, error) {
	var rev model.Revendedor
	err := r.db.WithContext(ctx).Where("id = ? AND activo = ?", id, true).First(&rev).Error
	return &rev, err
}

func (r *revendedorRepo) ListActivos(ctx context.Context) ([]model.Revendedor, error) {
	var revs []model.Revendedor
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre ASC, id ASC").Find(&revs).Error
	return revs, err
}

func (r *revendedorRepo) Update(ctx context.Context, rev *model.Revendedor) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Revendedor{}).
		Where("id = ? AND activo = ?", rev.ID, true).
		Updates(map[string]any{
			"nombre":        rev.Nombre,
			"contacto":      rev.Contacto,
			"notas":         rev.Notas,
			"saldo_inicial": rev.SaldoInicial,
		})
	return res.RowsAffected, res.Error
}

func (r *revendedorRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	return r.SoftDeleteTx(r.db.WithContext(ctx), id)
}

func (r *revendedorRepo) SoftDeleteTx(tx *gorm.DB, id int64) (int64, error) {
	res := tx.Model(&model.Revendedor{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return res.RowsAffected, res.Error
}

func (r *revendedorRepo) CountHistorialTx(tx *gorm.DB, id int64) (int64, int64, error) {
	var entregas, pagos int64
	if err := tx.Model(&model.Entrega{}).Where("revendedor_id = ?", id).Count(&entregas).Error; err != nil {
		return 0, 0, err
	}
	if err := tx.Model(&model.Pago{}).Where("revendedor_id = ?", id).Count(&pagos).Error; err != nil {
		return 0, 0, err
	}
	return entregas, pagos, nil
}

type sumaPorRevendedor struct {
	RevendedorID int64
	Suma         decimal.Decimal
}

func (r *revendedorRepo) SumEntregas(ctx context.Context) (map[int64]decimal.Decimal, error) {
	return r.sumar(ctx, &model.Entrega{}, "total")
}

func (r *revendedorRepo) SumPagos(ctx context.Context) (map[int64]decimal.Decimal, error) {
	return r.sumar(ctx, &model.Pago{}, "monto")
}

func (r *revendedorRepo) sumar(ctx context.Context, m any, columna string) (map[int64]decimal.Decimal, error) {
	var filas []sumaPorRevendedor
	err := r.db.WithContext(ctx).Model(m).
		Select("revendedor_id, COALESCE(SUM("+columna+"), 0) AS suma").
		Where("tipo_cliente = ? AND revendedor_id IS NOT NULL", model.ClienteRevendedor).
		Group("revendedor_id").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int64]decimal.Decimal, len(filas))
	for _, f := range filas {
		out[f.RevendedorID] = f.Suma
	}
	return out, nil
}
