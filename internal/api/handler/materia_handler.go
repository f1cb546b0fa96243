package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// MateriaHandler materia HTTP handler
type MateriaHandler struct {
	materiaSvc service.MateriaService
	logger     *zap.Logger
}

// NewMateriaHandler creates a MateriaHandler
func NewMateriaHandler(materiaSvc service.MateriaService, logger *zap.Logger) *MateriaHandler {
	return &MateriaHandler{materiaSvc: materiaSvc, logger: logger}
}

// List every materia ordered by nrc
// GET /materias/all
func (h *MateriaHandler) List(c *gin.Context) {
	materias, err := h.materiaSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, materias)
}

// Get one materia
// GET /materias?id=<id>
func (h *MateriaHandler) Get(c *gin.Context) {
	materia, err := h.materiaSvc.GetByID(c.Request.Context(), dto.ParseLookupID(c.Query("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, materia)
}

// Create registers a materia
// POST /materias
func (h *MateriaHandler) Create(c *gin.Context) {
	var req dto.CreateMateriaRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.materiaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Created(c, dto.MateriaCreatedResponse{MateriaCreatedID: id})
}

// Update replaces a materia
// PUT /materias
func (h *MateriaHandler) Update(c *gin.Context) {
	var req dto.UpdateMateriaRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.materiaSvc.Update(c.Request.Context(), &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "Materia actualizada correctamente")
}

// Delete removes a materia
// DELETE /materias/:id_materia
func (h *MateriaHandler) Delete(c *gin.Context) {
	raw := c.Param("id_materia")
	if raw == "" {
		writeError(c, h.logger, service.ErrMateriaIDRequired)
		return
	}

	id := dto.ParseLookupID(raw)
	if err := h.materiaSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Materia con ID %d eliminada correctamente.", id))
}
