package model

import "time"

// BaseModel timestamps embedded by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// Roles a user can hold, one per profile table.
const (
	RoleAdministrador = "administrador"
	RoleMaestro       = "maestro"
	RoleAlumno        = "alumno"
)
