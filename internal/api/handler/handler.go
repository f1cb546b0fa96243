package handler

import (
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth          *AuthHandler
	Materia       *MateriaHandler
	Administrador *AdministradorHandler
	Maestro       *MaestroHandler
	Alumno        *AlumnoHandler
	Totales       *TotalesHandler
	Export        *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth, logger),
		Materia:       NewMateriaHandler(svc.Materia, logger),
		Administrador: NewAdministradorHandler(svc.Administrador, logger),
		Maestro:       NewMaestroHandler(svc.Maestro, logger),
		Alumno:        NewAlumnoHandler(svc.Alumno, logger),
		Totales:       NewTotalesHandler(svc.Totales, logger),
		Export:        NewExportHandler(svc.Export, logger),
	}
}
