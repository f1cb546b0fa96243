package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("Correo o contraseña incorrectos.")

// AuthService session business logic
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token id until the token would have expired anyway.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates an AuthService. blacklist may be nil, in which case
// logout only succeeds on the client side.
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. user
	user, err := s.repo.User.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("error al consultar usuario", zap.Error(err))
		return nil, err
	}

	// 2. password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. role from the profile table holding the user
	role, err := s.resolveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// 4. token
	token, err := s.jwtMgr.GenerateAccessToken(user.ID, role)
	if err != nil {
		s.logger.Error("error al generar token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("inicio de sesión", zap.Uint("user_id", user.ID), zap.String("rol", role))

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.AccessTokenTTL().Seconds()),
		Rol:       role,
		User:      toUserResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.BlacklistToken(ctx, jti, ttl); err != nil {
		s.logger.Error("error al revocar token", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

// resolveRole checks administradores, maestros and alumnos in that order.
// A user without a profile cannot sign in.
func (s *authService) resolveRole(ctx context.Context, userID uint) (string, error) {
	lookups := []struct {
		role string
		find func() error
	}{
		{model.RoleAdministrador, func() error {
			_, err := s.repo.Administrador.GetByUserID(ctx, userID)
			return err
		}},
		{model.RoleMaestro, func() error {
			_, err := s.repo.Maestro.GetByUserID(ctx, userID)
			return err
		}},
		{model.RoleAlumno, func() error {
			_, err := s.repo.Alumno.GetByUserID(ctx, userID)
			return err
		}},
	}

	for _, l := range lookups {
		err := l.find()
		if err == nil {
			return l.role, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("error al consultar perfil", zap.String("rol", l.role), zap.Error(err))
			return "", err
		}
	}
	return "", ErrInvalidCredentials
}
