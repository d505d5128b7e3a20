package repository

import (
	"context"
	"errors"

	"iego3d/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntregaRepository interface {
	// CreateTx inserts the header only; items go through CreateItemsTx.
	CreateTx(ctx context.Context, tx *gorm.DB, e *model.Entrega) error
	CreateItemsTx(ctx context.Context, tx *gorm.DB, items []model.EntregaItem) error
	FindByID(ctx context.Context, id int64) (*model.Entrega, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Entrega, error)
	ListByRevendedor(ctx context.Context, revendedorID int64) ([]model.Entrega, error)
	ItemsTx(ctx context.Context, tx *gorm.DB, entregaID int64) ([]model.EntregaItem, error)
	// DeleteTx removes the items and then the header, returning the number of
	// headers removed.
	DeleteTx(ctx context.Context, tx *gorm.DB, id int64) (int64, error)

	// Dashboard aggregates over deliveries dated in [desde, hasta).
	PiezaMasVendida(ctx context.Context, desde, hasta string) (*string, error)
	RevendedorTop(ctx context.Context, desde, hasta string) (*string, error)

	DB() *gorm.DB
}

type entregaRepo struct{ db *gorm.DB }

func NewEntregaRepository(db *gorm.DB) EntregaRepository { return &entregaRepo{db: db} }

func (r *entregaRepo) DB() *gorm.DB { return r.db }

func (r *entregaRepo) CreateTx(ctx context.Context, tx *gorm.DB, e *model.Entrega) error {
	return tx.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *entregaRepo) CreateItemsTx(ctx context.Context, tx *gorm.DB, items []model.EntregaItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *entregaRepo) FindByID(ctx context.Context, id int64) (*model.Entrega, error) {
	var e model.Entrega
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&e, id).Error
	return &e, err
}

func (r *entregaRepo) ListRecientes(ctx context.Context, limit int) ([]model.Entrega, error) {
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).Order("fecha DESC, id DESC").Limit(limit).Find(&entregas).Error
	return entregas, err
}

func (r *entregaRepo) ListByRevendedor(ctx context.Context, revendedorID int64) ([]model.Entrega, error) {
	var entregas []model.Entrega
	err := r.db.WithContext(ctx).
		Where("tipo_cliente = ? AND revendedor_id = ?", model.ClienteRevendedor, revendedorID).
		Order("fecha ASC, id ASC").
		Find(&entregas).Error
	return entregas, err
}

func (r *entregaRepo) ItemsTx(ctx context.Context, tx *gorm.DB, entregaID int64) ([]model.EntregaItem, error) {
	var items []model.EntregaItem
	err := tx.WithContext(ctx).Where("entrega_id = ?", entregaID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *entregaRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id int64) (int64, error) {
	tx = tx.WithContext(ctx)
	if err := tx.Where("entrega_id = ?", id).Delete(&model.EntregaItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Where("id = ?", id).Delete(&model.Entrega{})
	return res.RowsAffected, res.Error
}

type nombreAgregado struct {
	Nombre string
}

func (r *entregaRepo) PiezaMasVendida(ctx context.Context, desde, hasta string) (*string, error) {
	var fila nombreAgregado
	err := r.db.WithContext(ctx).Table("entrega_items AS ei").
		Select("ei.nombre_pieza AS nombre").
		Joins("JOIN entregas e ON ei.entrega_id = e.id").
		Where("e.fecha >= ? AND e.fecha < ?", desde, hasta).
		Group("ei.nombre_pieza").
		Order("SUM(ei.cantidad) DESC, ei.nombre_pieza ASC").
		Limit(1).
		Take(&fila).Error
	return nombreOrNil(fila, err)
}

func (r *entregaRepo) RevendedorTop(ctx context.Context, desde, hasta string) (*string, error) {
	var fila nombreAgregado
	err := r.db.WithContext(ctx).Table("entregas AS e").
		Select("r.nombre AS nombre").
		Joins("JOIN revendedores r ON e.revendedor_id = r.id").
		Where("e.tipo_cliente = ? AND e.fecha >= ? AND e.fecha < ?", model.ClienteRevendedor, desde, hasta).
		Group("r.id, r.nombre").
		Order("SUM(e.total) DESC, r.nombre ASC").
		Limit(1).
		Take(&fila).Error
	return nombreOrNil(fila, err)
}

func nombreOrNil(fila nombreAgregado, err error) (*string, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fila.Nombre, nil
}
