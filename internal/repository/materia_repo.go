package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
)

// MateriaRepository materia data access
type MateriaRepository interface {
	Create(ctx context.Context, materia *model.Materia) error
	GetByID(ctx context.Context, id uint) (*model.Materia, error)
	// ExistsByNRC reports whether another materia uses nrc; excludeID 0 excludes nothing.
	ExistsByNRC(ctx context.Context, nrc string, excludeID uint) (bool, error)
	// List returns every materia ordered by nrc, instructor and user preloaded.
	List(ctx context.Context) ([]model.Materia, error)
	Update(ctx context.Context, materia *model.Materia) error
	Delete(ctx context.Context, id uint) error
}

type materiaRepo struct {
	db *gorm.DB
}

// NewMateriaRepo creates a GORM MateriaRepository
func NewMateriaRepo(db *gorm.DB) MateriaRepository {
	return &materiaRepo{db: db}
}

func (r *materiaRepo) Create(ctx context.Context, materia *model.Materia) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(materia).Error
}

func (r *materiaRepo) GetByID(ctx context.Context, id uint) (*model.Materia, error) {
	var materia model.Materia
	err := r.db.WithContext(ctx).
		Preload("Profesor.User").
		Where("id = ?", id).
		First(&materia).Error
	if err != nil {
		return nil, err
	}
	return &materia, nil
}

func (r *materiaRepo) ExistsByNRC(ctx context.Context, nrc string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).
		Model(&model.Materia{}).
		Where("nrc = ?", nrc)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *materiaRepo) List(ctx context.Context) ([]model.Materia, error) {
	var materias []model.Materia
	err := r.db.WithContext(ctx).
		Preload("Profesor.User").
		Order("nrc ASC").
		Find(&materias).Error
	return materias, err
}

func (r *materiaRepo) Update(ctx context.Context, materia *model.Materia) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(materia).Error
}

func (r *materiaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Materia{}, id).Error
}
