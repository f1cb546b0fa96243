package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
	apperrors "github.com/Yojipoji28/control-escolar-desit-api/pkg/errors"
)

// ── profile errors ──

var (
	ErrAdministradorNotFound = apperrors.NotFound("No se encontró el administrador.")
	ErrMaestroNotFound       = apperrors.NotFound("No se encontró el maestro.")
	ErrAlumnoNotFound        = apperrors.NotFound("No se encontró el alumno.")
	ErrUltimoAdministrador   = apperrors.Validation("No se puede eliminar al último administrador.")
)

const msgEmailRegistrado = "El email %s ya está registrado."

// normalizeEmail emails are compared case-insensitively.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// provisionUser creates the user behind a new profile.
func provisionUser(ctx context.Context, tx *repository.Repository, fields dto.UserFields, password string) (*model.User, error) {
	email := normalizeEmail(fields.Email)
	if err := ensureEmailAvailable(ctx, tx, email, 0); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    fields.FirstName,
		LastName:     fields.LastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := tx.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Validation(msgEmailRegistrado, email)
		}
		return nil, err
	}
	return user, nil
}

// updateUser replaces names and email; the password changes only when given.
func updateUser(ctx context.Context, tx *repository.Repository, user *model.User, fields dto.UserFields, password *string) error {
	email := normalizeEmail(fields.Email)
	if email != user.Email {
		if err := ensureEmailAvailable(ctx, tx, email, user.ID); err != nil {
			return err
		}
	}

	user.FirstName = fields.FirstName
	user.LastName = fields.LastName
	user.Email = email
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	if err := tx.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Validation(msgEmailRegistrado, email)
		}
		return err
	}
	return nil
}

func ensureEmailAvailable(ctx context.Context, tx *repository.Repository, email string, ownerID uint) error {
	existing, err := tx.User.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID != ownerID {
			return apperrors.Validation(msgEmailRegistrado, email)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

// loadUser returns the preloaded user or fetches it.
func loadUser(ctx context.Context, tx *repository.Repository, preloaded *model.User, userID uint) (*model.User, error) {
	if preloaded != nil {
		return preloaded, nil
	}
	return tx.User.GetByID(ctx, userID)
}

// getMaestro resolves a Maestro id; 0 never matches.
func getMaestro(ctx context.Context, repo *repository.Repository, id dto.LookupID) (*model.Maestro, error) {
	if id == 0 {
		return nil, ErrMaestroNotFound
	}
	maestro, err := repo.Maestro.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaestroNotFound
		}
		return nil, err
	}
	return maestro, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	if u == nil {
		return dto.UserResponse{}
	}
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
