package dto

// ── materias ──

// CreateMateriaRequest body of POST /materias
type CreateMateriaRequest struct {
	NRC               string   `json:"nrc"                binding:"required,max=20"`
	NombreMateria     string   `json:"nombre_materia"     binding:"required,max=255"`
	Seccion           string   `json:"seccion"            binding:"required,max=20"`
	Dias              string   `json:"dias"               binding:"required,max=100"`
	HoraInicio        string   `json:"hora_inicio"        binding:"required"`
	HoraFin           string   `json:"hora_fin"           binding:"required"`
	Salon             string   `json:"salon"              binding:"required,max=50"`
	ProgramaEducativo string   `json:"programa_educativo" binding:"required,max=255"`
	Profesor          LookupID `json:"profesor"` // Maestro id, resolved by the service
	Creditos          *int     `json:"creditos"           binding:"required,gte=0,lte=30"`
}

// UpdateMateriaRequest body of PUT /materias; every mutable field is replaced
type UpdateMateriaRequest struct {
	ID LookupID `json:"id"`
	CreateMateriaRequest
}

// MateriaResponse materia payload
type MateriaResponse struct {
	ID                uint   `json:"id"`
	NRC               string `json:"nrc"`
	NombreMateria     string `json:"nombre_materia"`
	Seccion           string `json:"seccion"`
	Dias              string `json:"dias"`
	HoraInicio        string `json:"hora_inicio"`
	HoraFin           string `json:"hora_fin"`
	Salon             string `json:"salon"`
	ProgramaEducativo string `json:"programa_educativo"`
	Profesor          *uint  `json:"profesor"`
	Creditos          int    `json:"creditos"`
	ProfesorNombre    string `json:"profesor_nombre"`
}

// MateriaCreatedResponse body of a successful POST /materias
type MateriaCreatedResponse struct {
	MateriaCreatedID uint `json:"materia_created_id"`
}

// ExportMateriasRequest query of GET /materias/export
type ExportMateriasRequest struct {
	Formato string `form:"formato" binding:"omitempty,oneof=xlsx pdf"`
}
