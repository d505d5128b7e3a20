package service

import (
	"context"
	"strings"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/model"
	"iego3d/internal/repository"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.ProductoResponse, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (int64, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest) error
	Desactivar(ctx context.Context, id int64) error
}

const msgProductoNoEncontrado = "Producto no encontrado"

var errNumericos = apierror.Validation("Stock y precios deben ser numéricos")

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al listar productos", err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgProductoNoEncontrado)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (int64, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return 0, apierror.Validation("El nombre es obligatorio")
	}
	if !req.Stock.IsInteger() {
		return 0, errNumericos
	}

	p := &model.Producto{
		Nombre:           nombre,
		TipoPieza:        strings.TrimSpace(req.TipoPieza),
		Subtipo:          strings.TrimSpace(req.Subtipo),
		Stock:            int(req.Stock.IntPart()),
		Precio:           req.Precio.Decimal,
		PrecioRevendedor: req.PrecioRevendedor.Decimal,
		Notas:            strings.TrimSpace(req.Notas),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, apierror.Persistence("No se pudo crear el producto", err)
	}
	return p.ID, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest) error {
	if !req.Stock.IsInteger() {
		return errNumericos
	}
	n, err := s.repo.Update(ctx, &model.Producto{
		ID:               id,
		Nombre:           *req.Nombre,
		TipoPieza:        *req.TipoPieza,
		Subtipo:          *req.Subtipo,
		Stock:            int(req.Stock.IntPart()),
		Precio:           *req.Precio,
		PrecioRevendedor: *req.PrecioRevendedor,
		Notas:            *req.Notas,
	})
	if err != nil {
		return apierror.Persistence("No se pudo actualizar el producto", err)
	}
	if n == 0 {
		return apierror.NotFound(msgProductoNoEncontrado)
	}
	return nil
}

// Desactivar soft-deletes the product. Stock and past deliveries are untouched.
func (s *productoService) Desactivar(ctx context.Context, id int64) error {
	n, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return apierror.Persistence("No se pudo borrar el producto", err)
	}
	if n == 0 {
		return apierror.NotFound(msgProductoNoEncontrado)
	}
	return nil
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		TipoPieza:        p.TipoPieza,
		Subtipo:          p.Subtipo,
		Stock:            p.Stock,
		Precio:           p.Precio,
		PrecioRevendedor: p.PrecioRevendedor,
		Notas:            p.Notas,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
