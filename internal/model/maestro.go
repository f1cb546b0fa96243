package model

// Maestro teacher profile, instructor of Materias (table maestros)
type Maestro struct {
	ID                uint   `gorm:"primaryKey"                                    json:"id"`
	UserID            uint   `gorm:"not null;uniqueIndex:idx_maestros_user_id"     json:"user_id"`
	IDTrabajador      string `gorm:"column:id_trabajador;type:varchar(255);not null" json:"id_trabajador"`
	FechaNacimiento   string `gorm:"type:varchar(10);not null"                     json:"fecha_nacimiento"` // YYYY-MM-DD
	Telefono          string `gorm:"type:varchar(255);not null"                    json:"telefono"`
	RFC               string `gorm:"column:rfc;type:varchar(255);not null"         json:"rfc"`
	Cubiculo          string `gorm:"type:varchar(255);not null"                    json:"cubiculo"`
	AreaInvestigacion string `gorm:"type:varchar(255);not null"                    json:"area_investigacion"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName table name
func (Maestro) TableName() string { return "maestros" }
