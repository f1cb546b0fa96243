package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	apperrors "github.com/Yojipoji28/control-escolar-desit-api/pkg/errors"
)

// ── materia errors ──

var (
	ErrMateriaNotFound   = apperrors.NotFound("No se encontró la materia.")
	ErrMateriaIDRequired = apperrors.Validation("Se necesita el ID de la materia.")
	ErrHoraInvalida      = apperrors.Validation("Formato de hora inválido.")
	ErrHorarioInvalido   = apperrors.Validation("La hora de inicio debe ser menor a la hora final.")
)

const (
	msgNRCExiste = "El NRC %s ya existe."
	msgNRCEnUso  = "El NRC %s ya está en uso."
)

// MateriaService course section business logic
type MateriaService interface {
	// List every materia ordered by nrc.
	List(ctx context.Context) ([]dto.MateriaResponse, error)
	GetByID(ctx context.Context, id dto.LookupID) (*dto.MateriaResponse, error)
	// Create validates and stores a new materia, returning its id.
	Create(ctx context.Context, req *dto.CreateMateriaRequest) (uint, error)
	// Update replaces every mutable field of an existing materia.
	Update(ctx context.Context, req *dto.UpdateMateriaRequest) error
	Delete(ctx context.Context, id dto.LookupID) error
}

type materiaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMateriaService creates a MateriaService
func NewMateriaService(repo *repository.Repository, logger *zap.Logger) MateriaService {
	return &materiaService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *materiaService) List(ctx context.Context) ([]dto.MateriaResponse, error) {
	materias, err := s.repo.Materia.List(ctx)
	if err != nil {
		s.logger.Error("error al listar materias", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MateriaResponse, 0, len(materias))
	for i := range materias {
		result = append(result, toMateriaResponse(&materias[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *materiaService) GetByID(ctx context.Context, id dto.LookupID) (*dto.MateriaResponse, error) {
	materia, err := s.getMateria(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	resp := toMateriaResponse(materia)
	return &resp, nil
}

// ────────────────────── Create ──────────────────────

func (s *materiaService) Create(ctx context.Context, req *dto.CreateMateriaRequest) (uint, error) {
	var materia *model.Materia

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		horario, err := s.validateMateria(ctx, tx, req, 0, msgNRCExiste)
		if err != nil {
			return err
		}

		materia = &model.Materia{}
		horario.apply(materia, req)

		if err := tx.Materia.Create(ctx, materia); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Validation(msgNRCExiste, req.NRC)
			}
			s.logger.Error("error al crear materia", zap.String("nrc", req.NRC), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("materia creada", zap.Uint("id", materia.ID), zap.String("nrc", materia.NRC))
	return materia.ID, nil
}

// ────────────────────── Update ──────────────────────

func (s *materiaService) Update(ctx context.Context, req *dto.UpdateMateriaRequest) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		materia, err := s.getMateria(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		horario, err := s.validateMateria(ctx, tx, &req.CreateMateriaRequest, materia.ID, msgNRCEnUso)
		if err != nil {
			return err
		}
		horario.apply(materia, &req.CreateMateriaRequest)

		if err := tx.Materia.Update(ctx, materia); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Validation(msgNRCEnUso, req.NRC)
			}
			s.logger.Error("error al actualizar materia", zap.Uint("id", materia.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

// ────────────────────── Delete ──────────────────────

func (s *materiaService) Delete(ctx context.Context, id dto.LookupID) error {
	return s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		materia, err := s.getMateria(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := tx.Materia.Delete(ctx, materia.ID); err != nil {
			s.logger.Error("error al eliminar materia", zap.Uint("id", materia.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

// ── helpers ──

// validatedMateria inputs that passed validation, ready to be stored.
type validatedMateria struct {
	profesor   *model.Maestro
	horaInicio string
	horaFin    string
}

func (v validatedMateria) apply(m *model.Materia, req *dto.CreateMateriaRequest) {
	m.NRC = req.NRC
	m.NombreMateria = req.NombreMateria
	m.Seccion = req.Seccion
	m.Dias = req.Dias
	m.HoraInicio = v.horaInicio
	m.HoraFin = v.horaFin
	m.Salon = req.Salon
	m.ProgramaEducativo = req.ProgramaEducativo
	m.ProfesorID = &v.profesor.ID
	m.Profesor = v.profesor
	m.Creditos = *req.Creditos
}

// validateMateria checks, in order: nrc uniqueness (ignoring excludeID),
// instructor existence, time format and start < end.
func (s *materiaService) validateMateria(
	ctx context.Context,
	tx *repository.Repository,
	req *dto.CreateMateriaRequest,
	excludeID uint,
	dupMsg string,
) (validatedMateria, error) {
	exists, err := tx.Materia.ExistsByNRC(ctx, req.NRC, excludeID)
	if err != nil {
		s.logger.Error("error al verificar NRC", zap.String("nrc", req.NRC), zap.Error(err))
		return validatedMateria{}, err
	}
	if exists {
		return validatedMateria{}, apperrors.Validation(dupMsg, req.NRC)
	}

	profesor, err := getMaestro(ctx, tx, req.Profesor)
	if err != nil {
		if !errors.Is(err, ErrMaestroNotFound) {
			s.logger.Error("error al consultar maestro", zap.Uint("id", uint(req.Profesor)), zap.Error(err))
		}
		return validatedMateria{}, err
	}

	inicio, err := ParseHora(req.HoraInicio)
	if err != nil {
		return validatedMateria{}, ErrHoraInvalida
	}
	fin, err := ParseHora(req.HoraFin)
	if err != nil {
		return validatedMateria{}, ErrHoraInvalida
	}
	if !inicio.Before(fin) {
		return validatedMateria{}, ErrHorarioInvalido
	}

	return validatedMateria{
		profesor:   profesor,
		horaInicio: FormatHora(inicio),
		horaFin:    FormatHora(fin),
	}, nil
}

func (s *materiaService) getMateria(ctx context.Context, repo *repository.Repository, id dto.LookupID) (*model.Materia, error) {
	if id == 0 {
		return nil, ErrMateriaNotFound
	}
	materia, err := repo.Materia.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMateriaNotFound
		}
		s.logger.Error("error al consultar materia", zap.Uint("id", uint(id)), zap.Error(err))
		return nil, err
	}
	return materia, nil
}

// toMateriaResponse serializes a materia; profesor_nombre is empty when the
// instructor or its user is not loaded.
func toMateriaResponse(m *model.Materia) dto.MateriaResponse {
	resp := dto.MateriaResponse{
		ID:                m.ID,
		NRC:               m.NRC,
		NombreMateria:     m.NombreMateria,
		Seccion:           m.Seccion,
		Dias:              m.Dias,
		HoraInicio:        normalizeHora(m.HoraInicio),
		HoraFin:           normalizeHora(m.HoraFin),
		Salon:             m.Salon,
		ProgramaEducativo: m.ProgramaEducativo,
		Profesor:          m.ProfesorID,
		Creditos:          m.Creditos,
	}
	if m.Profesor != nil && m.Profesor.User != nil {
		resp.ProfesorNombre = m.Profesor.User.FullName()
	}
	return resp
}
