package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
)

// MaestroService maestro profile business logic
type MaestroService interface {
	List(ctx context.Context) ([]dto.MaestroResponse, error)
	GetByID(ctx context.Context, id dto.LookupID) (*dto.MaestroResponse, error)
	Create(ctx context.Context, req *dto.CreateMaestroRequest) (*dto.ProfileCreatedResponse, error)
	Update(ctx context.Context, req *dto.UpdateMaestroRequest) error
	// Delete removes the profile and its user. Materias it taught keep no instructor.
	Delete(ctx context.Context, id dto.LookupID) error
}

type maestroService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaestroService creates a MaestroService
func NewMaestroService(repo *repository.Repository, logger *zap.Logger) MaestroService {
	return &maestroService{repo: repo, logger: logger}
}

func (s *maestroService) List(ctx context.Context) ([]dto.MaestroResponse, error) {
	maestros, err := s.repo.Maestro.List(ctx)
	if err != nil {
		s.logger.Error("error al listar maestros", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MaestroResponse, 0, len(maestros))
	for i := range maestros {
		result = append(result, toMaestroResponse(&maestros[i]))
	}
	return result, nil
}

func (s *maestroService) GetByID(ctx context.Context, id dto.LookupID) (*dto.MaestroResponse, error) {
	maestro, err := getMaestro(ctx, s.repo, id)
	if err != nil {
		logUnexpected(s.logger, "error al consultar maestro", err)
		return nil, err
	}
	resp := toMaestroResponse(maestro)
	return &resp, nil
}

func (s *maestroService) Create(ctx context.Context, req *dto.CreateMaestroRequest) (*dto.ProfileCreatedResponse, error) {
	var maestro *model.Maestro

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		user, err := provisionUser(ctx, tx, req.UserFields, req.Password)
		if err != nil {
			return err
		}

		maestro = &model.Maestro{UserID: user.ID, User: user}
		applyMaestroFields(maestro, &req.MaestroFields)
		return tx.Maestro.Create(ctx, maestro)
	})
	if err != nil {
		logUnexpected(s.logger, "error al crear maestro", err)
		return nil, err
	}

	s.logger.Info("maestro creado", zap.Uint("id", maestro.ID), zap.Uint("user_id", maestro.UserID))
	return &dto.ProfileCreatedResponse{ID: maestro.ID, UserID: maestro.UserID}, nil
}

func (s *maestroService) Update(ctx context.Context, req *dto.UpdateMaestroRequest) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		maestro, err := getMaestro(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		user, err := loadUser(ctx, tx, maestro.User, maestro.UserID)
		if err != nil {
			return err
		}
		if err := updateUser(ctx, tx, user, req.UserFields, req.Password); err != nil {
			return err
		}

		applyMaestroFields(maestro, &req.MaestroFields)
		return tx.Maestro.Update(ctx, maestro)
	})
	logUnexpected(s.logger, "error al actualizar maestro", err)
	return err
}

func (s *maestroService) Delete(ctx context.Context, id dto.LookupID) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		maestro, err := getMaestro(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := tx.Maestro.Delete(ctx, maestro.ID); err != nil {
			return err
		}
		return tx.User.Delete(ctx, maestro.UserID)
	})
	logUnexpected(s.logger, "error al eliminar maestro", err)
	return err
}

// ── helpers ──

func applyMaestroFields(m *model.Maestro, f *dto.MaestroFields) {
	m.IDTrabajador = f.IDTrabajador
	m.FechaNacimiento = f.FechaNacimiento
	m.Telefono = f.Telefono
	m.RFC = f.RFC
	m.Cubiculo = f.Cubiculo
	m.AreaInvestigacion = f.AreaInvestigacion
}

func toMaestroResponse(m *model.Maestro) dto.MaestroResponse {
	return dto.MaestroResponse{
		ID:   m.ID,
		User: toUserResponse(m.User),
		MaestroFields: dto.MaestroFields{
			IDTrabajador:      m.IDTrabajador,
			FechaNacimiento:   m.FechaNacimiento,
			Telefono:          m.Telefono,
			RFC:               m.RFC,
			Cubiculo:          m.Cubiculo,
			AreaInvestigacion: m.AreaInvestigacion,
		},
	}
}
