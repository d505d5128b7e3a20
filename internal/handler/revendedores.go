package handler

import (
	"net/http"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
)

// RevendedoresHandler mixes two conventions: creation and the guarded delete
// answer 200 {ok:false}, the REST-style routes use status codes.
type RevendedoresHandler struct{ svc service.RevendedorService }

func NewRevendedoresHandler(svc service.RevendedorService) *RevendedoresHandler {
	return &RevendedoresHandler{svc: svc}
}

func (h *RevendedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RevendedoresHandler) Crear(c *gin.Context) {
	var req dto.RevendedorRequest
	if !bindOK(c, &req, "JSON inválido") {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CrearResponse{OK: true, ID: id})
}

func (h *RevendedoresHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.RevendedorRequest
	if !bindAndValidate(c, &req, "Saldo inicial inválido") {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

func (h *RevendedoresHandler) Desactivar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

func (h *RevendedoresHandler) Movimientos(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	movs, err := h.svc.Movimientos(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovimientosResponse{OK: true, Movimientos: movs})
}

// Borrar soft-deletes a reseller only when nothing references it.
func (h *RevendedoresHandler) Borrar(c *gin.Context) {
	var req dto.BorrarRequest
	if !bindOK(c, &req, "Falta ID del revendedor") {
		return
	}
	switch {
	case !req.ID.Presente:
		c.JSON(http.StatusOK, apierror.New("Falta ID del revendedor"))
		return
	case req.ID.Invalido:
		c.JSON(http.StatusOK, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Borrar(c.Request.Context(), req.ID.Valor); err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
