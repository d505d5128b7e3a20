package service

import (
	"context"
	"time"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/ledger"
	"iego3d/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService summarises the current calendar month.
type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	pagos    repository.PagoRepository
	gastos   repository.GastoRepository
	entregas repository.EntregaRepository
	now      Clock
}

func NewDashboardService(
	pagos repository.PagoRepository,
	gastos repository.GastoRepository,
	entregas repository.EntregaRepository,
	now Clock,
) DashboardService {
	return &dashboardService{pagos: pagos, gastos: gastos, entregas: entregas, now: now}
}

func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	hoy := s.now()
	inicio := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
	fin := inicio.AddDate(0, 1, 0)
	mes := inicio.Format("2006-01")
	desde, hasta := inicio.Format(time.DateOnly), fin.Format(time.DateOnly)

	montos, costos, err := s.pagos.SumMes(ctx, mes)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular el mes", err)
	}
	gastos, err := s.gastos.ListByMes(ctx, mes)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular el mes", err)
	}
	comunes, _ := ledger.TotalesGastos(gastos)
	ganancia := ledger.GananciaMes(montos, costos, comunes)

	pieza, err := s.entregas.PiezaMasVendida(ctx, desde, hasta)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular el mes", err)
	}
	top, err := s.entregas.RevendedorTop(ctx, desde, hasta)
	if err != nil {
		return nil, apierror.Persistence("Error al calcular el mes", err)
	}

	return &dto.DashboardResponse{
		Mes:                   mes,
		GananciaMes:           ganancia,
		GananciaIndividualMes: ganancia.Div(decimal.NewFromInt(2)),
		PiezaMasVendida:       pieza,
		RevendedorTop:         top,
	}, nil
}
