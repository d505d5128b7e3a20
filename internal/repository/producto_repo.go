package repository

import (
	"context"
	"errors"

	"iego3d/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindActivoByID(ctx context.Context, id int64) (*model.Producto, error)
	ListActivos(ctx context.Context) ([]model.Producto, error)
	// Update overwrites the editable fields of an active product and reports
	// how many rows matched.
	Update(ctx context.Context, p *model.Producto) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)

	// Used inside transactions; callers must pass the tx instance.
	// FindStockTx reports found=false when the product id does not exist.
	FindStockTx(tx *gorm.DB, id int64) (stock int, found bool, err error)
	SetStockTx(tx *gorm.DB, id int64, stock int) error
	UpdateStockTx(tx *gorm.DB, id int64, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	p.Activo = true
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindActivoByID(ctx context.Context, id int64) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ? AND activo = ?", id, true).First(&p).Error
	return &p, err
}

func (r *productoRepo) ListActivos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre ASC, id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND activo = ?", p.ID, true).
		Updates(map[string]any{
			"nombre":            p.Nombre,
			"tipo_pieza":        p.TipoPieza,
			"subtipo":           p.Subtipo,
			"stock":             p.Stock,
			"precio":            p.Precio,
			"precio_revendedor": p.PrecioRevendedor,
			"notas":             p.Notas,
		})
	return res.RowsAffected, res.Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) FindStockTx(tx *gorm.DB, id int64) (int, bool, error) {
	var p model.Producto
	err := tx.Select("id", "stock").Where("id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return p.Stock, true, nil
}

func (r *productoRepo) SetStockTx(tx *gorm.DB, id int64, stock int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id int64, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}
