package dto

// ── auth ──

// LoginRequest body of POST /login
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse issued session
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // seconds
	Rol       string       `json:"rol"`
	User      UserResponse `json:"user"`
}

// TotalesUsuariosResponse body of GET /totales-usuarios
type TotalesUsuariosResponse struct {
	Administradores int64 `json:"administradores"`
	Maestros        int64 `json:"maestros"`
	Alumnos         int64 `json:"alumnos"`
	Total           int64 `json:"total"`
}
