package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
)

// AdministradorRepository administrador profile data access
type AdministradorRepository interface {
	Create(ctx context.Context, admin *model.Administrador) error
	GetByID(ctx context.Context, id uint) (*model.Administrador, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Administrador, error)
	List(ctx context.Context) ([]model.Administrador, error)
	Update(ctx context.Context, admin *model.Administrador) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type administradorRepo struct {
	db *gorm.DB
}

// NewAdministradorRepo creates a GORM AdministradorRepository
func NewAdministradorRepo(db *gorm.DB) AdministradorRepository {
	return &administradorRepo{db: db}
}

func (r *administradorRepo) Create(ctx context.Context, admin *model.Administrador) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(admin).Error
}

func (r *administradorRepo) GetByID(ctx context.Context, id uint) (*model.Administrador, error) {
	var admin model.Administrador
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administradorRepo) GetByUserID(ctx context.Context, userID uint) (*model.Administrador, error) {
	var admin model.Administrador
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administradorRepo) List(ctx context.Context) ([]model.Administrador, error) {
	var admins []model.Administrador
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&admins).Error
	return admins, err
}

func (r *administradorRepo) Update(ctx context.Context, admin *model.Administrador) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(admin).Error
}

func (r *administradorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Administrador{}, id).Error
}

func (r *administradorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Administrador{}).Count(&count).Error
	return count, err
}
