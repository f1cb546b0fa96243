package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/config"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
)

// AdministradorService administrador profile business logic
type AdministradorService interface {
	List(ctx context.Context) ([]dto.AdministradorResponse, error)
	GetByID(ctx context.Context, id dto.LookupID) (*dto.AdministradorResponse, error)
	Create(ctx context.Context, req *dto.CreateAdministradorRequest) (*dto.ProfileCreatedResponse, error)
	Update(ctx context.Context, req *dto.UpdateAdministradorRequest) error
	// Delete removes the profile and its user; the last administrador cannot be removed.
	Delete(ctx context.Context, id dto.LookupID) error
	// EnsureBootstrap seeds the first administrador when none exists and an email is configured.
	EnsureBootstrap(ctx context.Context, cfg config.BootstrapConfig) error
}

type administradorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdministradorService creates an AdministradorService
func NewAdministradorService(repo *repository.Repository, logger *zap.Logger) AdministradorService {
	return &administradorService{repo: repo, logger: logger}
}

func (s *administradorService) List(ctx context.Context) ([]dto.AdministradorResponse, error) {
	admins, err := s.repo.Administrador.List(ctx)
	if err != nil {
		s.logger.Error("error al listar administradores", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AdministradorResponse, 0, len(admins))
	for i := range admins {
		result = append(result, toAdministradorResponse(&admins[i]))
	}
	return result, nil
}

func (s *administradorService) GetByID(ctx context.Context, id dto.LookupID) (*dto.AdministradorResponse, error) {
	admin, err := s.getAdministrador(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	resp := toAdministradorResponse(admin)
	return &resp, nil
}

func (s *administradorService) Create(ctx context.Context, req *dto.CreateAdministradorRequest) (*dto.ProfileCreatedResponse, error) {
	var admin *model.Administrador

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		user, err := provisionUser(ctx, tx, req.UserFields, req.Password)
		if err != nil {
			return err
		}

		admin = &model.Administrador{UserID: user.ID, User: user}
		applyAdministradorFields(admin, &req.AdministradorFields)
		return tx.Administrador.Create(ctx, admin)
	})
	if err != nil {
		logUnexpected(s.logger, "error al crear administrador", err)
		return nil, err
	}

	s.logger.Info("administrador creado", zap.Uint("id", admin.ID), zap.Uint("user_id", admin.UserID))
	return &dto.ProfileCreatedResponse{ID: admin.ID, UserID: admin.UserID}, nil
}

func (s *administradorService) Update(ctx context.Context, req *dto.UpdateAdministradorRequest) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		admin, err := s.getAdministrador(ctx, tx, req.ID)
		if err != nil {
			return err
		}

		user, err := loadUser(ctx, tx, admin.User, admin.UserID)
		if err != nil {
			return err
		}
		if err := updateUser(ctx, tx, user, req.UserFields, req.Password); err != nil {
			return err
		}

		applyAdministradorFields(admin, &req.AdministradorFields)
		return tx.Administrador.Update(ctx, admin)
	})
	logUnexpected(s.logger, "error al actualizar administrador", err)
	return err
}

func (s *administradorService) Delete(ctx context.Context, id dto.LookupID) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		admin, err := s.getAdministrador(ctx, tx, id)
		if err != nil {
			return err
		}

		count, err := tx.Administrador.Count(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrUltimoAdministrador
		}

		if err := tx.Administrador.Delete(ctx, admin.ID); err != nil {
			return err
		}
		return tx.User.Delete(ctx, admin.UserID)
	})
	logUnexpected(s.logger, "error al eliminar administrador", err)
	return err
}

func (s *administradorService) EnsureBootstrap(ctx context.Context, cfg config.BootstrapConfig) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	count, err := s.repo.Administrador.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	resp, err := s.Create(ctx, &dto.CreateAdministradorRequest{
		UserFields: dto.UserFields{
			FirstName: cfg.AdminFirstName,
			LastName:  cfg.AdminLastName,
			Email:     cfg.AdminEmail,
		},
		Password:            cfg.AdminPassword,
		AdministradorFields: dto.AdministradorFields{ClaveAdmin: "ADMIN-0001"},
	})
	if err != nil {
		return err
	}

	s.logger.Info("administrador inicial creado",
		zap.Uint("id", resp.ID),
		zap.String("email", normalizeEmail(cfg.AdminEmail)),
	)
	return nil
}

// ── helpers ──

func (s *administradorService) getAdministrador(ctx context.Context, repo *repository.Repository, id dto.LookupID) (*model.Administrador, error) {
	if id == 0 {
		return nil, ErrAdministradorNotFound
	}
	admin, err := repo.Administrador.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdministradorNotFound
		}
		return nil, err
	}
	return admin, nil
}

func applyAdministradorFields(a *model.Administrador, f *dto.AdministradorFields) {
	a.ClaveAdmin = f.ClaveAdmin
	a.Telefono = f.Telefono
	a.RFC = f.RFC
	a.Edad = f.Edad
	a.Ocupacion = f.Ocupacion
}

func toAdministradorResponse(a *model.Administrador) dto.AdministradorResponse {
	return dto.AdministradorResponse{
		ID:   a.ID,
		User: toUserResponse(a.User),
		AdministradorFields: dto.AdministradorFields{
			ClaveAdmin: a.ClaveAdmin,
			Telefono:   a.Telefono,
			RFC:        a.RFC,
			Edad:       a.Edad,
			Ocupacion:  a.Ocupacion,
		},
	}
}
