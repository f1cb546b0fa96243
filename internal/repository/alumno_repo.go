package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
)

// AlumnoRepository alumno profile data access
type AlumnoRepository interface {
	Create(ctx context.Context, alumno *model.Alumno) error
	GetByID(ctx context.Context, id uint) (*model.Alumno, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Alumno, error)
	List(ctx context.Context) ([]model.Alumno, error)
	Update(ctx context.Context, alumno *model.Alumno) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type alumnoRepo struct {
	db *gorm.DB
}

// NewAlumnoRepo creates a GORM AlumnoRepository
func NewAlumnoRepo(db *gorm.DB) AlumnoRepository {
	return &alumnoRepo{db: db}
}

func (r *alumnoRepo) Create(ctx context.Context, alumno *model.Alumno) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(alumno).Error
}

func (r *alumnoRepo) GetByID(ctx context.Context, id uint) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&alumno).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) GetByUserID(ctx context.Context, userID uint) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&alumno).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) List(ctx context.Context) ([]model.Alumno, error) {
	var alumnos []model.Alumno
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&alumnos).Error
	return alumnos, err
}

func (r *alumnoRepo) Update(ctx context.Context, alumno *model.Alumno) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(alumno).Error
}

func (r *alumnoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Alumno{}, id).Error
}

func (r *alumnoRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Alumno{}).Count(&count).Error
	return count, err
}
