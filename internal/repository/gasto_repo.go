package repository

import (
	"context"

	"iego3d/internal/model"

	"gorm.io/gorm"
)

type GastoRepository interface {
	Create(ctx context.Context, g *model.Gasto) error
	// UpdateDeTipo edits the row with g.ID only when its stored tipo matches.
	UpdateDeTipo(ctx context.Context, g *model.Gasto, tipo string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListByMes(ctx context.Context, mes string) ([]model.Gasto, error)
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) Create(ctx context.Context, g *model.Gasto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) UpdateDeTipo(ctx context.Context, g *model.Gasto, tipo string) (int64, error) {
	campos := map[string]any{
		"fecha":       g.Fecha,
		"descripcion": g.Descripcion,
		"monto":       g.Monto,
		"mes_clave":   g.MesClave,
	}
	if tipo == model.GastoComun {
		campos["es_filamento"] = g.EsFilamento
	}
	res := r.db.WithContext(ctx).Model(&model.Gasto{}).
		Where("id = ? AND tipo = ?", g.ID, tipo).
		Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *gastoRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Gasto{})
	return res.RowsAffected, res.Error
}

func (r *gastoRepo) ListByMes(ctx context.Context, mes string) ([]model.Gasto, error) {
	var gastos []model.Gasto
	err := r.db.WithContext(ctx).Where("mes_clave = ?", mes).Order("fecha DESC, id DESC").Find(&gastos).Error
	return gastos, err
}
