package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository groups every data-access interface.
type Repository struct {
	db *gorm.DB

	User          UserRepository
	Administrador AdministradorRepository
	Maestro       MaestroRepository
	Alumno        AlumnoRepository
	Materia       MateriaRepository
}

// NewRepository builds all repositories over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:            db,
		User:          NewUserRepo(db),
		Administrador: NewAdministradorRepo(db),
		Maestro:       NewMaestroRepo(db),
		Alumno:        NewAlumnoRepo(db),
		Materia:       NewMateriaRepo(db),
	}
}

// Transaction runs fn against repositories bound to a single database
// transaction. It commits when fn returns nil and rolls back when fn returns
// an error or panics.
//
// A Repository assembled without a *gorm.DB (in-memory test doubles) runs fn
// against itself.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
