package service

import (
	"context"
	"strconv"
	"strings"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/ledger"
	"iego3d/internal/model"
	"iego3d/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CuentasService backs the monthly accounts page: it records payments and
// expenses posted from its forms and builds the month view.
type CuentasService interface {
	Vista(ctx context.Context, mes string) (*dto.CuentasResponse, error)
	Registrar(ctx context.Context, form dto.CuentasForm) error
}

var errMontoDivision = apierror.Validation("Monto o división inválidos")

type cuentasService struct {
	pagos        repository.PagoRepository
	gastos       repository.GastoRepository
	revendedores repository.RevendedorRepository
	now          Clock
}

func NewCuentasService(
	pagos repository.PagoRepository,
	gastos repository.GastoRepository,
	revendedores repository.RevendedorRepository,
	now Clock,
) CuentasService {
	return &cuentasService{pagos: pagos, gastos: gastos, revendedores: revendedores, now: now}
}

func (s *cuentasService) Vista(ctx context.Context, pedido string) (*dto.CuentasResponse, error) {
	meses, err := s.pagos.MesesDisponibles(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al leer los meses", err)
	}
	if meses == nil {
		meses = []string{}
	}

	resp := &dto.CuentasResponse{
		MesesDisponibles: meses,
		Grupos:           []ledger.Grupo{},
		Gastos:           []dto.GastoResponse{},
		PagosAyudante:    []dto.GastoResponse{},
		Revendedores:     []dto.RevendedorOpcion{},
		ParaFilamentoMes: decimal.Zero,
		Hoy:              hoy(s.now),
	}

	if mes := ledger.SeleccionarMes(meses, strings.TrimSpace(pedido)); mes != "" {
		resp.MesSeleccionado = &mes

		filas, err := s.pagos.ListByMes(ctx, mes)
		if err != nil {
			return nil, apierror.Persistence("Error al leer los pagos", err)
		}
		resp.Grupos, resp.Totales = ledger.AgruparPagos(filas)
		resp.ParaFilamentoMes = resp.Totales.Costo

		gastos, err := s.gastos.ListByMes(ctx, mes)
		if err != nil {
			return nil, apierror.Persistence("Error al leer los gastos", err)
		}
		for _, g := range gastos {
			switch g.Tipo {
			case model.GastoComun:
				resp.Gastos = append(resp.Gastos, gastoToResponse(g))
			case model.GastoPagoAyudante:
				resp.PagosAyudante = append(resp.PagosAyudante, gastoToResponse(g))
			}
		}
		gastosMes, pagadoAyudante := ledger.TotalesGastos(gastos)
		resp.Resumen = ledger.Conciliar(resp.Totales.GananciaIndividual, gastosMes, pagadoAyudante)
	}

	revs, err := s.revendedores.ListActivos(ctx)
	if err != nil {
		return nil, apierror.Persistence("Error al listar revendedores", err)
	}
	for _, r := range revs {
		resp.Revendedores = append(resp.Revendedores, dto.RevendedorOpcion{ID: r.ID, Nombre: r.Nombre})
	}
	return resp, nil
}

// Registrar applies one submitted form. A missing form_type means "pago";
// unknown types are ignored.
func (s *cuentasService) Registrar(ctx context.Context, form dto.CuentasForm) error {
	switch strings.TrimSpace(form.FormType) {
	case "", dto.FormPago:
		return s.registrarPago(ctx, form)
	case dto.FormGasto:
		return s.registrarGasto(ctx, form)
	case dto.FormGastoEdit:
		return s.editarGasto(ctx, form, model.GastoComun)
	case dto.FormPagoAyudanteEdit:
		return s.editarGasto(ctx, form, model.GastoPagoAyudante)
	}
	return nil
}

// ── Pagos ─────────────────────────────────────────────────────────────────────
// With dividir=on one submission becomes up to two rows that share fecha,
// cliente and descripcion; AgruparPagos joins them back for display.

func (s *cuentasService) registrarPago(ctx context.Context, form dto.CuentasForm) error {
	base := model.Pago{
		Fecha:           strings.TrimSpace(form.Fecha),
		TipoCliente:     model.ClienteParticular,
		Descripcion:     strings.TrimSpace(form.Descripcion),
		CategoriaPrecio: model.CategoriaNormal,
	}
	if base.Fecha == "" {
		base.Fecha = hoy(s.now)
	}
	base.MesClave = ledger.MesClave(base.Fecha)

	if rid := strings.TrimSpace(form.RevendedorID); rid != "" {
		id, err := strconv.ParseInt(rid, 10, 64)
		if err != nil {
			return apierror.Validation("revendedor_id inválido")
		}
		base.TipoCliente = model.ClienteRevendedor
		base.RevendedorID = &id
		base.CategoriaPrecio = model.CategoriaRevendedor
	} else {
		base.NombreParticular = optString(form.NombreParticular)
	}

	monto, err := parseMonto(form.Monto)
	if err != nil {
		return errMontoDivision
	}
	division, err := parseEntero(form.Division, 1)
	if err != nil {
		return errMontoDivision
	}

	type parte struct {
		monto     decimal.Decimal
		division  int
		categoria string
	}
	var partes []parte
	if form.Dividir == "on" {
		for _, p := range [][3]string{
			{form.Monto1, form.Division1, form.Categoria1},
			{form.Monto2, form.Division2, form.Categoria2},
		} {
			m, err := parseMonto(p[0])
			if err != nil {
				return errMontoDivision
			}
			d, err := parseEntero(p[1], division)
			if err != nil {
				return errMontoDivision
			}
			cat := strings.TrimSpace(p[2])
			if cat == "" {
				cat = base.CategoriaPrecio
			}
			partes = append(partes, parte{m, d, cat})
		}
	} else {
		partes = []parte{{monto, division, base.CategoriaPrecio}}
	}

	filas := make([]model.Pago, 0, len(partes))
	for _, p := range partes {
		if !p.monto.IsPositive() {
			continue
		}
		fila := base
		fila.Monto = p.monto
		fila.Division = p.division
		fila.CategoriaPrecio = p.categoria
		ledger.Aplicar(&fila)
		filas = append(filas, fila)
	}
	if len(filas) == 0 {
		return nil
	}

	err = runTx(ctx, s.pagos.DB(), func(tx *gorm.DB) error {
		return s.pagos.CreateTx(ctx, tx, filas)
	})
	if err != nil {
		return apierror.Persistence("No se pudo guardar el pago", err)
	}
	return nil
}

// ── Gastos ────────────────────────────────────────────────────────────────────

func (s *cuentasService) gastoDesdeForm(form dto.CuentasForm) (model.Gasto, error) {
	g := model.Gasto{
		Fecha:       strings.TrimSpace(form.FechaGasto),
		Descripcion: strings.TrimSpace(form.DescripcionGasto),
		EsFilamento: form.EsFilamento == "1" || form.EsFilamento == "on",
	}
	if g.Fecha == "" {
		g.Fecha = hoy(s.now)
	}
	g.MesClave = ledger.MesClave(g.Fecha)

	monto, err := parseMonto(form.MontoGasto)
	if err != nil {
		return g, apierror.Validation("Monto de gasto inválido")
	}
	g.Monto = monto
	return g, nil
}

func (s *cuentasService) registrarGasto(ctx context.Context, form dto.CuentasForm) error {
	g, err := s.gastoDesdeForm(form)
	if err != nil {
		return err
	}
	if !g.Monto.IsPositive() {
		return nil
	}
	g.Tipo = strings.TrimSpace(form.TipoGasto)
	if g.Tipo == "" {
		g.Tipo = model.GastoComun
	}
	if err := s.gastos.Create(ctx, &g); err != nil {
		return apierror.Persistence("No se pudo guardar el gasto", err)
	}
	return nil
}

// editarGasto only touches a row whose stored tipo matches; a miss is silent,
// like the other form posts.
func (s *cuentasService) editarGasto(ctx context.Context, form dto.CuentasForm, tipo string) error {
	raw := strings.TrimSpace(form.GastoID)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return apierror.Validation("ID de gasto inválido.")
	}
	g, err := s.gastoDesdeForm(form)
	if err != nil {
		return err
	}
	if !g.Monto.IsPositive() {
		return nil
	}
	g.ID = id
	if _, err := s.gastos.UpdateDeTipo(ctx, &g, tipo); err != nil {
		return apierror.Persistence("No se pudo actualizar el gasto", err)
	}
	return nil
}

func gastoToResponse(g model.Gasto) dto.GastoResponse {
	return dto.GastoResponse{
		ID:          g.ID,
		Fecha:       g.Fecha,
		Tipo:        g.Tipo,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		EsFilamento: g.EsFilamento,
	}
}
