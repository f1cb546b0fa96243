package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
)

// TotalesService dashboard counts
type TotalesService interface {
	// Get counts rows per profile table.
	Get(ctx context.Context) (*dto.TotalesUsuariosResponse, error)
}

type totalesService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTotalesService creates a TotalesService
func NewTotalesService(repo *repository.Repository, logger *zap.Logger) TotalesService {
	return &totalesService{repo: repo, logger: logger}
}

func (s *totalesService) Get(ctx context.Context) (*dto.TotalesUsuariosResponse, error) {
	admins, err := s.repo.Administrador.Count(ctx)
	if err != nil {
		s.logger.Error("error al contar administradores", zap.Error(err))
		return nil, err
	}
	maestros, err := s.repo.Maestro.Count(ctx)
	if err != nil {
		s.logger.Error("error al contar maestros", zap.Error(err))
		return nil, err
	}
	alumnos, err := s.repo.Alumno.Count(ctx)
	if err != nil {
		s.logger.Error("error al contar alumnos", zap.Error(err))
		return nil, err
	}

	return &dto.TotalesUsuariosResponse{
		Administradores: admins,
		Maestros:        maestros,
		Alumnos:         alumnos,
		Total:           admins + maestros + alumnos,
	}, nil
}
