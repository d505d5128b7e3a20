package repository

import (
	"context"

	"iego3d/internal/ledger"
	"iego3d/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PagoRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, pagos []model.Pago) error
	FindByID(ctx context.Context, id int64) (*model.Pago, error)
	// Update overwrites every stored column of the row with p.ID.
	Update(ctx context.Context, p *model.Pago) (int64, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	ListByMes(ctx context.Context, mes string) ([]ledger.PagoFila, error)
	ListByRevendedor(ctx context.Context, revendedorID int64) ([]model.Pago, error)
	SumMes(ctx context.Context, mes string) (montos, costos decimal.Decimal, err error)
	// MesesDisponibles is the union of the month keys of pagos and gastos,
	// most recent first.
	MesesDisponibles(ctx context.Context) ([]string, error)

	DB() *gorm.DB
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) DB() *gorm.DB { return r.db }

func (r *pagoRepo) CreateTx(ctx context.Context, tx *gorm.DB, pagos []model.Pago) error {
	if len(pagos) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&pagos).Error
}

func (r *pagoRepo) FindByID(ctx context.Context, id int64) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pagoRepo) Update(ctx context.Context, p *model.Pago) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Pago{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"fecha":               p.Fecha,
			"tipo_cliente":        p.TipoCliente,
			"revendedor_id":       p.RevendedorID,
			"nombre_particular":   p.NombreParticular,
			"descripcion":         p.Descripcion,
			"categoria_precio":    p.CategoriaPrecio,
			"monto":               p.Monto,
			"division":            p.Division,
			"costo":               p.Costo,
			"ganancia":            p.Ganancia,
			"ganancia_individual": p.GananciaIndividual,
			"mes_clave":           p.MesClave,
		})
	return res.RowsAffected, res.Error
}

func (r *pagoRepo) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Pago{})
	return res.RowsAffected, res.Error
}

func (r *pagoRepo) ListByMes(ctx context.Context, mes string) ([]ledger.PagoFila, error) {
	var filas []ledger.PagoFila
	err := r.db.WithContext(ctx).Table("pagos").
		Select("pagos.*, revendedores.nombre AS revendedor_nombre").
		Joins("LEFT JOIN revendedores ON pagos.revendedor_id = revendedores.id").
		Where("pagos.mes_clave = ?", mes).
		Order("pagos.fecha DESC, pagos.id DESC").
		Scan(&filas).Error
	return filas, err
}

func (r *pagoRepo) ListByRevendedor(ctx context.Context, revendedorID int64) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("tipo_cliente = ? AND revendedor_id = ?", model.ClienteRevendedor, revendedorID).
		Order("fecha ASC, id ASC").
		Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) SumMes(ctx context.Context, mes string) (decimal.Decimal, decimal.Decimal, error) {
	var fila struct {
		Montos decimal.Decimal
		Costos decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Select("COALESCE(SUM(monto), 0) AS montos, COALESCE(SUM(costo), 0) AS costos").
		Where("mes_clave = ?", mes).
		Scan(&fila).Error
	return fila.Montos, fila.Costos, err
}

func (r *pagoRepo) MesesDisponibles(ctx context.Context) ([]string, error) {
	var meses []string
	err := r.db.WithContext(ctx).Raw(
		"SELECT mes_clave FROM pagos UNION SELECT mes_clave FROM gastos ORDER BY mes_clave DESC",
	).Scan(&meses).Error
	return meses, err
}
