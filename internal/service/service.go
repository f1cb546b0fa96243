package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	apperrors "github.com/Yojipoji28/control-escolar-desit-api/pkg/errors"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
)

// TokenBlacklist stores revoked token ids until they expire.
// Implemented by pkg/redis and, as a fallback, pkg/cache.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Service groups every business service.
type Service struct {
	Auth          AuthService
	Materia       MateriaService
	Administrador AdministradorService
	Maestro       MaestroService
	Alumno        AlumnoService
	Totales       TotalesService
	Export        ExportService
}

// NewService wires all services over the repositories.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(repo, jwtMgr, blacklist, logger),
		Materia:       NewMateriaService(repo, logger),
		Administrador: NewAdministradorService(repo, logger),
		Maestro:       NewMaestroService(repo, logger),
		Alumno:        NewAlumnoService(repo, logger),
		Totales:       NewTotalesService(repo, logger),
		Export:        NewExportService(repo, logger),
	}
}

// logUnexpected logs err unless it is nil or a client-facing validation/not-found error.
func logUnexpected(logger *zap.Logger, msg string, err error) {
	if err == nil {
		return
	}
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) {
		return
	}
	logger.Error(msg, zap.Error(err))
}
