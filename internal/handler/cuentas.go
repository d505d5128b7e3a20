package handler

import (
	"net/http"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
)

type CuentasHandler struct{ svc service.CuentasService }

func NewCuentasHandler(svc service.CuentasService) *CuentasHandler {
	return &CuentasHandler{svc: svc}
}

// Vista returns the month selected by ?mes=YYYY-MM, or the latest one.
func (h *CuentasHandler) Vista(c *gin.Context) {
	resp, err := h.svc.Vista(c.Request.Context(), c.Query("mes"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar applies the posted form and answers with the refreshed view.
func (h *CuentasHandler) Registrar(c *gin.Context) {
	var form dto.CuentasForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario inválido"))
		return
	}
	if fields, ok := validar(&form); !ok {
		c.JSON(http.StatusBadRequest, apierror.NewValidation("Formulario inválido", fields))
		return
	}
	if err := h.svc.Registrar(c.Request.Context(), form); err != nil {
		fail(c, err)
		return
	}
	h.Vista(c)
}
