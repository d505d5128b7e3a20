package handler

import (
	"net/http"

	"iego3d/internal/dto"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
)

// PagosHandler serves single payment rows. Edits and deletes answer
// 200 {ok:false} on failure; only the read uses 404.
type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler {
	return &PagosHandler{svc: svc}
}

func (h *PagosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	pago, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PagoDetalleResponse{OK: true, Pago: *pago})
}

func (h *PagosHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarPagoRequest
	if !bindOK(c, &req, "Monto o división inválidos") {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

func (h *PagosHandler) BorrarVarios(c *gin.Context) {
	var req dto.BorrarPagosRequest
	if !bindOK(c, &req, "Formato de IDs inválido (no es lista).") {
		return
	}
	borrados, err := h.svc.BorrarVarios(c.Request.Context(), req.IDs)
	if err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrarPagosResponse{OK: true, Borrados: borrados})
}
