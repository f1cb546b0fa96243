package model

// Alumno student profile (table alumnos)
type Alumno struct {
	ID              uint   `gorm:"primaryKey"                                json:"id"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_alumnos_user_id"  json:"user_id"`
	Matricula       string `gorm:"type:varchar(255);not null"                json:"matricula"`
	CURP            string `gorm:"column:curp;type:varchar(255);not null"    json:"curp"`
	RFC             string `gorm:"column:rfc;type:varchar(255);not null"     json:"rfc"`
	FechaNacimiento string `gorm:"type:varchar(10);not null"                 json:"fecha_nacimiento"` // YYYY-MM-DD
	Edad            int    `gorm:"not null"                                  json:"edad"`
	Telefono        string `gorm:"type:varchar(255);not null"                json:"telefono"`
	Ocupacion       string `gorm:"type:varchar(255);not null"                json:"ocupacion"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName table name
func (Alumno) TableName() string { return "alumnos" }
