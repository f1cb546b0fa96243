package model

// Materia course section offering, unique by NRC (table materias)
type Materia struct {
	ID                uint   `gorm:"primaryKey"                                               json:"id"`
	NRC               string `gorm:"column:nrc;type:varchar(20);not null;uniqueIndex:idx_materias_nrc" json:"nrc"`
	NombreMateria     string `gorm:"type:varchar(255);not null"                               json:"nombre_materia"`
	Seccion           string `gorm:"type:varchar(20);not null"                                json:"seccion"`
	Dias              string `gorm:"type:varchar(100);not null"                               json:"dias"`
	HoraInicio        string `gorm:"type:time;not null"                                       json:"hora_inicio"`
	HoraFin           string `gorm:"type:time;not null"                                       json:"hora_fin"`
	Salon             string `gorm:"type:varchar(50);not null"                                json:"salon"`
	ProgramaEducativo string `gorm:"type:varchar(255);not null"                               json:"programa_educativo"`
	ProfesorID        *uint  `gorm:"index:idx_materias_profesor_id"                           json:"profesor"` // NULL once the Maestro is deleted
	Creditos          int    `gorm:"not null"                                                 json:"creditos"`
	BaseModel

	Profesor *Maestro `gorm:"foreignKey:ProfesorID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName table name
func (Materia) TableName() string { return "materias" }
