package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
)

// MaestroRepository maestro profile data access
type MaestroRepository interface {
	Create(ctx context.Context, maestro *model.Maestro) error
	GetByID(ctx context.Context, id uint) (*model.Maestro, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Maestro, error)
	List(ctx context.Context) ([]model.Maestro, error)
	Update(ctx context.Context, maestro *model.Maestro) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type maestroRepo struct {
	db *gorm.DB
}

// NewMaestroRepo creates a GORM MaestroRepository
func NewMaestroRepo(db *gorm.DB) MaestroRepository {
	return &maestroRepo{db: db}
}

func (r *maestroRepo) Create(ctx context.Context, maestro *model.Maestro) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(maestro).Error
}

func (r *maestroRepo) GetByID(ctx context.Context, id uint) (*model.Maestro, error) {
	var maestro model.Maestro
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&maestro).Error
	if err != nil {
		return nil, err
	}
	return &maestro, nil
}

func (r *maestroRepo) GetByUserID(ctx context.Context, userID uint) (*model.Maestro, error) {
	var maestro model.Maestro
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&maestro).Error
	if err != nil {
		return nil, err
	}
	return &maestro, nil
}

func (r *maestroRepo) List(ctx context.Context) ([]model.Maestro, error) {
	var maestros []model.Maestro
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&maestros).Error
	return maestros, err
}

func (r *maestroRepo) Update(ctx context.Context, maestro *model.Maestro) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(maestro).Error
}

func (r *maestroRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Maestro{}, id).Error
}

func (r *maestroRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Maestro{}).Count(&count).Error
	return count, err
}
