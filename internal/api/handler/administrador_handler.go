package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// AdministradorHandler administrador profile HTTP handler
type AdministradorHandler struct {
	adminSvc service.AdministradorService
	logger   *zap.Logger
}

// NewAdministradorHandler creates an AdministradorHandler
func NewAdministradorHandler(adminSvc service.AdministradorService, logger *zap.Logger) *AdministradorHandler {
	return &AdministradorHandler{adminSvc: adminSvc, logger: logger}
}

// List GET /administradores/all
func (h *AdministradorHandler) List(c *gin.Context) {
	admins, err := h.adminSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, admins)
}

// Get GET /administradores?id=<id>
func (h *AdministradorHandler) Get(c *gin.Context) {
	admin, err := h.adminSvc.GetByID(c.Request.Context(), dto.ParseLookupID(c.Query("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, admin)
}

// Create POST /administradores
func (h *AdministradorHandler) Create(c *gin.Context) {
	var req dto.CreateAdministradorRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.adminSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Created(c, created)
}

// Update PUT /administradores
func (h *AdministradorHandler) Update(c *gin.Context) {
	var req dto.UpdateAdministradorRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.adminSvc.Update(c.Request.Context(), &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "Administrador actualizado correctamente")
}

// Delete DELETE /administradores/:id
func (h *AdministradorHandler) Delete(c *gin.Context) {
	id := dto.ParseLookupID(c.Param("id"))
	if err := h.adminSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Administrador con ID %d eliminado correctamente.", id))
}
