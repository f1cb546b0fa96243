package model

// Administrador administrative staff profile (table administradores)
type Administrador struct {
	ID         uint   `gorm:"primaryKey"                                                 json:"id"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_administradores_user_id"          json:"user_id"`
	ClaveAdmin string `gorm:"type:varchar(255);not null"                                 json:"clave_admin"`
	Telefono   string `gorm:"type:varchar(255);not null"                                 json:"telefono"`
	RFC        string `gorm:"column:rfc;type:varchar(255);not null"                      json:"rfc"`
	Edad       int    `gorm:"not null"                                                   json:"edad"`
	Ocupacion  string `gorm:"type:varchar(255);not null"                                 json:"ocupacion"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName table name
func (Administrador) TableName() string { return "administradores" }
