package handler

import (
	"net/http"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
)

type GastosHandler struct{ svc service.GastoService }

func NewGastosHandler(svc service.GastoService) *GastosHandler {
	return &GastosHandler{svc: svc}
}

func (h *GastosHandler) Borrar(c *gin.Context) {
	var req dto.BorrarRequest
	if !bindOK(c, &req, "ID de gasto inválido.") {
		return
	}
	switch {
	case !req.ID.Presente:
		c.JSON(http.StatusOK, apierror.New("Falta ID de gasto."))
		return
	case req.ID.Invalido:
		c.JSON(http.StatusOK, apierror.New("ID de gasto inválido."))
		return
	}
	borrados, err := h.svc.Borrar(c.Request.Context(), req.ID.Valor)
	if err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrarGastoResponse{OK: true, Borrados: borrados})
}
