package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/ledger"
	"iego3d/internal/model"
	"iego3d/internal/repository"
)

type PagoService interface {
	ObtenerPorID(ctx context.Context, id int64) (*dto.PagoResponse, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarPagoRequest) error
	BorrarVarios(ctx context.Context, ids json.RawMessage) (int64, error)
}

const msgPagoNoEncontrado = "Pago no encontrado"

type pagoService struct {
	repo repository.PagoRepository
	now  Clock
}

func NewPagoService(repo repository.PagoRepository, now Clock) PagoService {
	return &pagoService{repo: repo, now: now}
}

func (s *pagoService) ObtenerPorID(ctx context.Context, id int64) (*dto.PagoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, msgPagoNoEncontrado)
	}
	resp := pagoToResponse(p)
	return &resp, nil
}

// Actualizar replaces one stored row. It edits a single row, never a group.
func (s *pagoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarPagoRequest) error {
	p := model.Pago{
		ID:               id,
		Fecha:            strings.TrimSpace(req.Fecha),
		TipoCliente:      model.ClienteParticular,
		NombreParticular: optString(req.NombreParticular),
		Descripcion:      strings.TrimSpace(req.Descripcion),
		CategoriaPrecio:  strings.TrimSpace(req.CategoriaPrecio),
		Monto:            req.Monto.Decimal,
		Division:         int(req.Division.IntPart()),
	}
	if p.Fecha == "" {
		p.Fecha = hoy(s.now)
	}
	if p.CategoriaPrecio == "" {
		p.CategoriaPrecio = model.CategoriaNormal
	}
	if req.RevendedorID.Invalido {
		return apierror.Validation("revendedor_id inválido")
	}
	if rid := req.RevendedorID.Ptr(); rid != nil {
		p.TipoCliente = model.ClienteRevendedor
		p.RevendedorID = rid
		p.NombreParticular = nil
	}
	if !p.Monto.IsPositive() {
		return apierror.Validation("El monto debe ser mayor a 0")
	}
	if len(p.Fecha) >= 7 {
		p.MesClave = ledger.MesClave(p.Fecha)
	} else {
		p.MesClave = ledger.MesClave(hoy(s.now))
	}
	ledger.Aplicar(&p)

	filas, err := s.repo.Update(ctx, &p)
	if err != nil {
		return apierror.Persistence("No se pudo actualizar el pago", err)
	}
	if filas == 0 {
		return apierror.NotFound(msgPagoNoEncontrado)
	}
	return nil
}

// BorrarVarios deletes the listed rows. Entries that are not plain digit
// sequences are dropped silently.
func (s *pagoService) BorrarVarios(ctx context.Context, raw json.RawMessage) (int64, error) {
	ids, err := idsNumericos(raw)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, apierror.Validation("Lista de IDs vacía después de filtrar.")
	}
	borrados, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, apierror.Persistence("No se pudieron borrar los pagos", err)
	}
	if borrados == 0 {
		return 0, apierror.NotFound("No se encontró ningún pago con esos IDs.")
	}
	return borrados, nil
}

func idsNumericos(raw json.RawMessage) ([]int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var lista []any
	if err := dec.Decode(&lista); err != nil {
		return nil, apierror.Validation("Formato de IDs inválido (no es lista).")
	}

	ids := make([]int64, 0, len(lista))
	for _, v := range lista {
		var s string
		switch x := v.(type) {
		case json.Number:
			s = x.String()
		case string:
			s = x
		default:
			continue
		}
		if !soloDigitos(s) {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func soloDigitos(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pagoToResponse(p *model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:                 p.ID,
		Fecha:              p.Fecha,
		TipoCliente:        p.TipoCliente,
		RevendedorID:       p.RevendedorID,
		NombreParticular:   p.NombreParticular,
		Descripcion:        p.Descripcion,
		CategoriaPrecio:    p.CategoriaPrecio,
		Monto:              p.Monto,
		Division:           p.Division,
		Costo:              p.Costo,
		Ganancia:           p.Ganancia,
		GananciaIndividual: p.GananciaIndividual,
		MesClave:           p.MesClave,
	}
}
