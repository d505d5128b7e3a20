package service

import (
	"context"

	"iego3d/internal/apierror"
	"iego3d/internal/repository"
)

type GastoService interface {
	Borrar(ctx context.Context, id int64) (int64, error)
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Borrar(ctx context.Context, id int64) (int64, error) {
	borrados, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apierror.Persistence("No se pudo borrar el gasto", err)
	}
	if borrados == 0 {
		return 0, apierror.NotFound("No se encontró gasto con ese ID.")
	}
	return borrados, nil
}
