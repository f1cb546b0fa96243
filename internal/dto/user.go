package dto

// ── users & profiles ──

// UserFields identity fields shared by every profile request
type UserFields struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name"  binding:"required,max=150"`
	Email     string `json:"email"      binding:"required,email,max=254"`
}

// UserResponse serialized user
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ProfileCreatedResponse body of a successful profile POST
type ProfileCreatedResponse struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
}

// ── administradores ──

// AdministradorFields profile fields of an administrador
type AdministradorFields struct {
	ClaveAdmin string `json:"clave_admin" binding:"required,max=255"`
	Telefono   string `json:"telefono"    binding:"omitempty,max=255"`
	RFC        string `json:"rfc"         binding:"omitempty,max=13"`
	Edad       int    `json:"edad"        binding:"gte=0,lte=120"`
	Ocupacion  string `json:"ocupacion"   binding:"omitempty,max=255"`
}

// CreateAdministradorRequest body of POST /administradores
type CreateAdministradorRequest struct {
	UserFields
	Password string `json:"password" binding:"required,min=8,max=128"`
	AdministradorFields
}

// UpdateAdministradorRequest body of PUT /administradores
type UpdateAdministradorRequest struct {
	ID LookupID `json:"id"`
	UserFields
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
	AdministradorFields
}

// AdministradorResponse administrador payload
type AdministradorResponse struct {
	ID   uint         `json:"id"`
	User UserResponse `json:"user"`
	AdministradorFields
}

// ── maestros ──

// MaestroFields profile fields of a maestro
type MaestroFields struct {
	IDTrabajador      string `json:"id_trabajador"      binding:"required,max=255"`
	FechaNacimiento   string `json:"fecha_nacimiento"   binding:"omitempty,datetime=2006-01-02"`
	Telefono          string `json:"telefono"           binding:"omitempty,max=255"`
	RFC               string `json:"rfc"                binding:"omitempty,max=13"`
	Cubiculo          string `json:"cubiculo"           binding:"omitempty,max=255"`
	AreaInvestigacion string `json:"area_investigacion" binding:"omitempty,max=255"`
}

// CreateMaestroRequest body of POST /maestros
type CreateMaestroRequest struct {
	UserFields
	Password string `json:"password" binding:"required,min=8,max=128"`
	MaestroFields
}

// UpdateMaestroRequest body of PUT /maestros
type UpdateMaestroRequest struct {
	ID LookupID `json:"id"`
	UserFields
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
	MaestroFields
}

// MaestroResponse maestro payload
type MaestroResponse struct {
	ID   uint         `json:"id"`
	User UserResponse `json:"user"`
	MaestroFields
}

// ── alumnos ──

// AlumnoFields profile fields of an alumno
type AlumnoFields struct {
	Matricula       string `json:"matricula"        binding:"required,max=255"`
	CURP            string `json:"curp"             binding:"omitempty,len=18"`
	RFC             string `json:"rfc"              binding:"omitempty,max=13"`
	FechaNacimiento string `json:"fecha_nacimiento" binding:"omitempty,datetime=2006-01-02"`
	Edad            int    `json:"edad"             binding:"gte=0,lte=120"`
	Telefono        string `json:"telefono"         binding:"omitempty,max=255"`
	Ocupacion       string `json:"ocupacion"        binding:"omitempty,max=255"`
}

// CreateAlumnoRequest body of POST /alumnos
type CreateAlumnoRequest struct {
	UserFields
	Password string `json:"password" binding:"required,min=8,max=128"`
	AlumnoFields
}

// UpdateAlumnoRequest body of PUT /alumnos
type UpdateAlumnoRequest struct {
	ID LookupID `json:"id"`
	UserFields
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
	AlumnoFields
}

// AlumnoResponse alumno payload
type AlumnoResponse struct {
	ID   uint         `json:"id"`
	User UserResponse `json:"user"`
	AlumnoFields
}
