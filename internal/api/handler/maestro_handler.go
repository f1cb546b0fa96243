package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// MaestroHandler maestro profile HTTP handler
type MaestroHandler struct {
	maestroSvc service.MaestroService
	logger     *zap.Logger
}

// NewMaestroHandler creates a MaestroHandler
func NewMaestroHandler(maestroSvc service.MaestroService, logger *zap.Logger) *MaestroHandler {
	return &MaestroHandler{maestroSvc: maestroSvc, logger: logger}
}

// List GET /maestros/all
func (h *MaestroHandler) List(c *gin.Context) {
	maestros, err := h.maestroSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, maestros)
}

// Get GET /maestros?id=<id>
func (h *MaestroHandler) Get(c *gin.Context) {
	maestro, err := h.maestroSvc.GetByID(c.Request.Context(), dto.ParseLookupID(c.Query("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, maestro)
}

// Create POST /maestros
func (h *MaestroHandler) Create(c *gin.Context) {
	var req dto.CreateMaestroRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.maestroSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Created(c, created)
}

// Update PUT /maestros
func (h *MaestroHandler) Update(c *gin.Context) {
	var req dto.UpdateMaestroRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.maestroSvc.Update(c.Request.Context(), &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "Maestro actualizado correctamente")
}

// Delete DELETE /maestros/:id
func (h *MaestroHandler) Delete(c *gin.Context) {
	id := dto.ParseLookupID(c.Param("id"))
	if err := h.maestroSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Maestro con ID %d eliminado correctamente.", id))
}
