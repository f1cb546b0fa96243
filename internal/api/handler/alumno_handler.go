package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// AlumnoHandler alumno profile HTTP handler
type AlumnoHandler struct {
	alumnoSvc service.AlumnoService
	logger    *zap.Logger
}

// NewAlumnoHandler creates an AlumnoHandler
func NewAlumnoHandler(alumnoSvc service.AlumnoService, logger *zap.Logger) *AlumnoHandler {
	return &AlumnoHandler{alumnoSvc: alumnoSvc, logger: logger}
}

// List GET /alumnos/all
func (h *AlumnoHandler) List(c *gin.Context) {
	alumnos, err := h.alumnoSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, alumnos)
}

// Get GET /alumnos?id=<id>
func (h *AlumnoHandler) Get(c *gin.Context) {
	alumno, err := h.alumnoSvc.GetByID(c.Request.Context(), dto.ParseLookupID(c.Query("id")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, alumno)
}

// Create POST /alumnos
func (h *AlumnoHandler) Create(c *gin.Context) {
	var req dto.CreateAlumnoRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.alumnoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.Created(c, created)
}

// Update PUT /alumnos
func (h *AlumnoHandler) Update(c *gin.Context) {
	var req dto.UpdateAlumnoRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.alumnoSvc.Update(c.Request.Context(), &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "Alumno actualizado correctamente")
}

// Delete DELETE /alumnos/:id
func (h *AlumnoHandler) Delete(c *gin.Context) {
	id := dto.ParseLookupID(c.Param("id"))
	if err := h.alumnoSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, fmt.Sprintf("Alumno con ID %d eliminado correctamente.", id))
}
