package handler

import (
	"mime"
	"net/http"

	"iego3d/internal/apierror"
	"iego3d/internal/dto"
	"iego3d/internal/service"

	"github.com/gin-gonic/gin"
)

type EntregasHandler struct{ svc service.EntregaService }

func NewEntregasHandler(svc service.EntregaService) *EntregasHandler {
	return &EntregasHandler{svc: svc}
}

func (h *EntregasHandler) Crear(c *gin.Context) {
	var req dto.CrearEntregaRequest
	if !bindAndValidate(c, &req, "JSON inválido") {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CrearEntregaResponse{OK: true, EntregaID: id})
}

func (h *EntregasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarRecientes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EntregasHandler) ObtenerDetalle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Borrar deletes a delivery and gives its stock back.
func (h *EntregasHandler) Borrar(c *gin.Context) {
	var req dto.BorrarRequest
	if !bindOK(c, &req, "ID de entrega inválido.") {
		return
	}
	switch {
	case !req.ID.Presente:
		c.JSON(http.StatusOK, apierror.New("Falta ID de entrega."))
		return
	case req.ID.Invalido:
		c.JSON(http.StatusOK, apierror.New("ID de entrega inválido."))
		return
	}
	borradas, err := h.svc.Borrar(c.Request.Context(), req.ID.Valor)
	if err != nil {
		failOK(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrarEntregaResponse{OK: true, Borradas: borradas})
}

// DescargarPDF streams the receipt as an attachment. Errors are plain text,
// this route is opened straight from the browser.
func (h *EntregasHandler) DescargarPDF(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	pdf, nombre, err := h.svc.Recibo(c.Request.Context(), id)
	if err != nil {
		report(c, err)
		c.String(apierror.Status(err), apierror.Message(err))
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": nombre}))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
