package service

import (
	"context"
	"strings"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/infra"
	"iego3d/internal/model"
	"iego3d/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntregaService creates and deletes deliveries, keeping product stock in
// step, and renders their receipts.
type EntregaService interface {
	Crear(ctx context.Context, req dto.CrearEntregaRequest) (int64, error)
	ObtenerDetalle(ctx context.Context, id int64) (*dto.EntregaDetalleResponse, error)
	ListarRecientes(ctx context.Context) ([]dto.EntregaResponse, error)
	Borrar(ctx context.Context, id int64) (int64, error)
	// Recibo renders the delivery receipt and returns the PDF and the
	// download file name.
	Recibo(ctx context.Context, id int64) ([]byte, string, error)
}

// ReceiptRenderer is implemented by infra.ReceiptRenderer.
type ReceiptRenderer interface {
	Render(entregaID int64, rc infra.Receipt) ([]byte, error)
}

const (
	msgEntregaNoEncontrada = "Entrega no encontrada"
	entregasRecientes      = 25
)

type entregaService struct {
	repo      repository.EntregaRepository
	productos repository.ProductoRepository
	recibos   ReceiptRenderer
}

func NewEntregaService(repo repository.EntregaRepository, productos repository.ProductoRepository, recibos ReceiptRenderer) EntregaService {
	return &entregaService{repo: repo, productos: productos, recibos: recibos}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// One transaction:
//   1. insert header (cantidad_total and total summed from accepted lines)
//   2. insert items
//   3. for each item with a product: stock = max(0, stock - cantidad)
// Unknown product ids are stored on the item but do not touch stock.

func (s *entregaService) Crear(ctx context.Context, req dto.CrearEntregaRequest) (int64, error) {
	tipo := strings.TrimSpace(req.TipoCliente)
	if tipo != model.ClienteRevendedor && tipo != model.ClienteParticular {
		return 0, apierror.Validation("Tipo de cliente inválido")
	}
	cliente := strings.TrimSpace(req.ClienteNombre)
	if cliente == "" {
		return 0, apierror.Validation("Falta nombre del cliente")
	}
	fecha := strings.TrimSpace(req.Fecha)
	if fecha == "" {
		return 0, apierror.Validation("Falta la fecha de entrega")
	}

	entrega := model.Entrega{
		Fecha:         fecha,
		TipoCliente:   tipo,
		ClienteNombre: cliente,
		Total:         decimal.Zero,
	}
	if tipo == model.ClienteRevendedor {
		if req.RevendedorID.Invalido {
			return 0, apierror.Validation("revendedor_id inválido")
		}
		entrega.RevendedorID = req.RevendedorID.Ptr()
	}

	items := lineasAceptadas(req.Piezas)
	if len(items) == 0 {
		return 0, apierror.Validation("La entrega no tiene piezas")
	}
	for _, it := range items {
		entrega.CantidadTotal += it.Cantidad
		entrega.Total = entrega.Total.Add(it.Total)
	}

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, &entrega); err != nil {
			return err
		}
		for i := range items {
			items[i].EntregaID = entrega.ID
		}
		if err := s.repo.CreateItemsTx(ctx, tx, items); err != nil {
			return err
		}
		for _, it := range items {
			if it.ProductoID == nil {
				continue
			}
			stock, found, err := s.productos.FindStockTx(tx, *it.ProductoID)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			if err := s.productos.SetStockTx(tx, *it.ProductoID, max(0, stock-it.Cantidad)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apierror.Persistence("No se pudo guardar la entrega", err)
	}
	return entrega.ID, nil
}

// lineasAceptadas drops lines without a name or with cantidad <= 0.
func lineasAceptadas(piezas []dto.PiezaRequest) []model.EntregaItem {
	items := make([]model.EntregaItem, 0, len(piezas))
	for _, p := range piezas {
		nombre := strings.TrimSpace(p.NombrePieza)
		cantidad := int(p.Cantidad.IntPart())
		if nombre == "" || cantidad <= 0 {
			continue
		}
		total := p.PrecioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
		if !p.Total.IsZero() {
			total = p.Total.Decimal
		}
		items = append(items, model.EntregaItem{
			ProductoID:     p.ProductoID.Ptr(),
			NombrePieza:    nombre,
			Cantidad:       cantidad,
			PrecioUnitario: p.PrecioUnitario.Decimal,
			Total:          total,
		})
	}
	return items
}

func (s *entregaService) ObtenerDetalle(ctx context.Context, id int64) (*dto.EntregaDetalleResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgEntregaNoEncontrada)
	}
	resp := &dto.EntregaDetalleResponse{
		OK:      true,
		Entrega: entregaToResponse(e),
		Items:   make([]dto.EntregaItemResponse, 0, len(e.Items)),
	}
	for _, it := range e.Items {
		resp.Items = append(resp.Items, dto.EntregaItemResponse{
			ID:             it.ID,
			ProductoID:     it.ProductoID,
			NombrePieza:    it.NombrePieza,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Total:          it.Total,
		})
	}
	return resp, nil
}

func (s *entregaService) ListarRecientes(ctx context.Context) ([]dto.EntregaResponse, error) {
	entregas, err := s.repo.ListRecientes(ctx, entregasRecientes)
	if err != nil {
		return nil, apierror.Persistence("Error al listar entregas", err)
	}
	out := make([]dto.EntregaResponse, 0, len(entregas))
	for i := range entregas {
		out = append(out, entregaToResponse(&entregas[i]))
	}
	return out, nil
}

// ── Borrar ────────────────────────────────────────────────────────────────────
// One transaction: give the stock back (no upper clamp), delete items, delete
// header. A missing header rolls the whole thing back.

func (s *entregaService) Borrar(ctx context.Context, id int64) (int64, error) {
	var borradas int64
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		items, err := s.repo.ItemsTx(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.ProductoID == nil {
				continue
			}
			if err := s.productos.UpdateStockTx(tx, *it.ProductoID, it.Cantidad); err != nil {
				return err
			}
		}
		borradas, err = s.repo.DeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if borradas == 0 {
			return apierror.NotFound("No se encontró entrega con ese ID.")
		}
		return nil
	})
	if err != nil {
		return 0, typedOr(err, "No se pudo borrar la entrega")
	}
	return borradas, nil
}

func (s *entregaService) Recibo(ctx context.Context, id int64) ([]byte, string, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", lookupErr(err, msgEntregaNoEncontrada)
	}

	cliente := infra.SanitizeCliente(e.ClienteNombre)
	rc := infra.Receipt{Cliente: cliente, Fecha: e.Fecha, Lineas: make([]infra.Linea, 0, len(e.Items))}
	for _, it := range e.Items {
		rc.Lineas = append(rc.Lineas, infra.Linea{
			Pieza:    strings.TrimSpace(it.NombrePieza),
			Cantidad: it.Cantidad,
			Precio:   it.PrecioUnitario,
			Total:    it.Total,
		})
	}

	pdf, err := s.recibos.Render(e.ID, rc)
	if err != nil {
		return nil, "", apierror.Persistence("No se pudo generar el PDF", err)
	}
	return pdf, "ENTREGA_" + cliente + ".pdf", nil
}

func entregaToResponse(e *model.Entrega) dto.EntregaResponse {
	return dto.EntregaResponse{
		ID:            e.ID,
		Fecha:         e.Fecha,
		TipoCliente:   e.TipoCliente,
		RevendedorID:  e.RevendedorID,
		ClienteNombre: e.ClienteNombre,
		CantidadTotal: e.CantidadTotal,
		Total:         e.Total,
	}
}
