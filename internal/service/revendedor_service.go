package service

import (
	"context"
	"strings"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/ledger"
	"iego3d/internal/model"
	"iego3d/internal/repository"

	"gorm.io/gorm"
)

type RevendedorService interface {
	Listar(ctx context.Context) ([]dto.RevendedorResponse, error)
	Crear(ctx context.Context, req dto.RevendedorRequest) (int64, error)
	Actualizar(ctx context.Context, id int64, req dto.RevendedorRequest) error
	Desactivar(ctx context.Context, id int64) error
	// Borrar soft-deletes the reseller only when no delivery or payment
	// references it.
	Borrar(ctx context.Context, id int64) error
	Movimientos(ctx context.Context, id int64) ([]ledger.Movimiento, error)
}

const msgRevendedorNoEncontrado = "Revendedor no encontrado"

type revendedorService struct {
	repo     repository.RevendedorRepository
	entregas repository.EntregaRepository
	pagos    repository.PagoRepository
}

func NewRevendedorService(repo repository.RevendedorRepository, entregas repository.EntregaRepository, pagos repository.PagoRepository) RevendedorService {
	return &revendedorService{repo: repo, entregas: entregas, pagos: pagos}
}

func (s *revendedorService) Listar(ctx context.Context) ([]dto.RevendedorResponse, error) {
	revs, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al listar revendedores", err)
	}
	entregas, err := s.repo.SumEntregas(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular saldos", err)
	}
	pagos, err := s.repo.SumPagos(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular saldos", err)
	}

	out := make([]dto.RevendedorResponse, 0, len(revs))
	for _, r := range revs {
		out = append(out, dto.RevendedorResponse{
			ID:           r.ID,
			Nombre:       r.Nombre,
			Contacto:     r.Contacto,
			Notas:        r.Notas,
			SaldoInicial: r.SaldoInicial,
			SaldoActual:  ledger.SaldoActual(r.SaldoInicial, entregas[r.ID], pagos[r.ID]),
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return out, nil
}

func (s *revendedorService) Crear(ctx context.Context, req dto.RevendedorRequest) (int64, error) {
	r, err := revendedorDesde(req)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return 0, apierror.Persistence("No se pudo crear el revendedor", err)
	}
	return r.ID, nil
}

func (s *revendedorService) Actualizar(ctx context.Context, id int64, req dto.RevendedorRequest) error {
	r, err := revendedorDesde(req)
	if err != nil {
		return err
	}
	r.ID = id
	n, err := s.repo.Update(ctx, r)
	if err != nil {
		return apierror.Persistence("No se pudo actualizar el revendedor", err)
	}
	if n == 0 {
		return apierror.NotFound(msgRevendedorNoEncontrado)
	}
	return nil
}

func (s *revendedorService) Desactivar(ctx context.Context, id int64) error {
	n, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return apierror.Persistence("No se pudo borrar el revendedor", err)
	}
	if n == 0 {
		return apierror.NotFound(msgRevendedorNoEncontrado)
	}
	return nil
}

func (s *revendedorService) Borrar(ctx context.Context, id int64) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		entregas, pagos, err := s.repo.CountHistorialTx(tx, id)
		if err != nil {
			return err
		}
		if entregas > 0 || pagos > 0 {
			return apierror.Conflict("No se puede borrar: tiene entregas o pagos asociados.")
		}
		n, err := s.repo.SoftDeleteTx(tx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return apierror.NotFound(msgRevendedorNoEncontrado)
		}
		return nil
	})
	if err != nil {
		return typedOr(err, "No se pudo borrar el revendedor")
	}
	return nil
}

func (s *revendedorService) Movimientos(ctx context.Context, id int64) ([]ledger.Movimiento, error) {
	r, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgRevendedorNoEncontrado)
	}
	entregas, err := s.entregas.ListByRevendedor(ctx, id)
	if err != nil {
		return nil, apierror.Persistence("Error al leer entregas", err)
	}
	pagos, err := s.pagos.ListByRevendedor(ctx, id)
	if err != nil {
		return nil, apierror.Persistence("Error al leer pagos", err)
	}
	return ledger.Movimientos(r.SaldoInicial, entregas, pagos), nil
}

func revendedorDesde(req dto.RevendedorRequest) (*model.Revendedor, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apierror.Validation("El nombre es obligatorio")
	}
	return &model.Revendedor{
		Nombre:       nombre,
		Contacto:     strings.TrimSpace(req.Contacto),
		Notas:        strings.TrimSpace(req.Notas),
		SaldoInicial: req.SaldoInicial.Round(2),
	}, nil
}

