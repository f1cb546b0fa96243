package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
)

// AlumnoService alumno profile business logic
type AlumnoService interface {
	List(ctx context.Context) ([]dto.AlumnoResponse, error)
	GetByID(ctx context.Context, id dto.LookupID) (*dto.AlumnoResponse, error)
	Create(ctx context.Context, req *dto.CreateAlumnoRequest) (*dto.ProfileCreatedResponse, error)
	Update(ctx context.Context, req *dto.UpdateAlumnoRequest) error
	Delete(ctx context.Context, id dto.LookupID) error
}

type alumnoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAlumnoService creates an AlumnoService
func NewAlumnoService(repo *repository.Repository, logger *zap.Logger) AlumnoService {
	return &alumnoService{repo: repo, logger: logger}
}

func (s *alumnoService) List(ctx context.Context) ([]dto.AlumnoResponse, error) {
	alumnos, err := s.repo.Alumno.List(ctx)
	if err != nil {
		s.logger.Error("error al listar alumnos", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AlumnoResponse, 0, len(alumnos))
	for i := range alumnos {
		result = append(result, toAlumnoResponse(&alumnos[i]))
	}
	return result, nil
}

func (s *alumnoService) GetByID(ctx context.Context, id dto.LookupID) (*dto.AlumnoResponse, error) {
	alumno, err := getAlumno(ctx, s.repo, id)
	if err != nil {
		logUnexpected(s.logger, "error al consultar alumno", err)
		return nil, err
	}
	resp := toAlumnoResponse(alumno)
	return &resp, nil
}

func (s *alumnoService) Create(ctx context.Context, req *dto.CreateAlumnoRequest) (*dto.ProfileCreatedResponse, error) {
	var alumno *model.Alumno

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		user, err := provisionUser(ctx, tx, req.UserFields, req.Password)
		if err != nil {
			return err
		}

		alumno = &model.Alumno{UserID: user.ID, User: user}
		applyAlumnoFields(alumno, &req.AlumnoFields)
		return tx.Alumno.Create(ctx, alumno)
	})
	if err != nil {
		logUnexpected(s.logger, "error al crear alumno", err)
		return nil, err
	}

	s.logger.Info("alumno creado", zap.Uint("id", alumno.ID), zap.Uint("user_id", alumno.UserID))
	return &dto.ProfileCreatedResponse{ID: alumno.ID, UserID: alumno.UserID}, nil
}

func (s *alumnoService) Update(ctx context.Context, req *dto.UpdateAlumnoRequest) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		alumno, err := getAlumno(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		user, err := loadUser(ctx, tx, alumno.User, alumno.UserID)
		if err != nil {
			return err
		}
		if err := updateUser(ctx, tx, user, req.UserFields, req.Password); err != nil {
			return err
		}

		applyAlumnoFields(alumno, &req.AlumnoFields)
		return tx.Alumno.Update(ctx, alumno)
	})
	logUnexpected(s.logger, "error al actualizar alumno", err)
	return err
}

func (s *alumnoService) Delete(ctx context.Context, id dto.LookupID) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		alumno, err := getAlumno(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := tx.Alumno.Delete(ctx, alumno.ID); err != nil {
			return err
		}
		return tx.User.Delete(ctx, alumno.UserID)
	})
	logUnexpected(s.logger, "error al eliminar alumno", err)
	return err
}

// ── helpers ──

func getAlumno(ctx context.Context, repo *repository.Repository, id dto.LookupID) (*model.Alumno, error) {
	if id == 0 {
		return nil, ErrAlumnoNotFound
	}
	alumno, err := repo.Alumno.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlumnoNotFound
		}
		return nil, err
	}
	return alumno, nil
}

func applyAlumnoFields(a *model.Alumno, f *dto.AlumnoFields) {
	a.Matricula = f.Matricula
	a.CURP = f.CURP
	a.RFC = f.RFC
	a.FechaNacimiento = f.FechaNacimiento
	a.Edad = f.Edad
	a.Telefono = f.Telefono
	a.Ocupacion = f.Ocupacion
}

func toAlumnoResponse(a *model.Alumno) dto.AlumnoResponse {
	return dto.AlumnoResponse{
		ID:   a.ID,
		User: toUserResponse(a.User),
		AlumnoFields: dto.AlumnoFields{
			Matricula:       a.Matricula,
			CURP:            a.CURP,
			RFC:             a.RFC,
			FechaNacimiento: a.FechaNacimiento,
			Edad:            a.Edad,
			Telefono:        a.Telefono,
			Ocupacion:       a.Ocupacion,
		},
	}
}
