package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// AuthHandler session HTTP handler
type AuthHandler struct {
	authSvc service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, logger: logger}
}

// Login issues an access token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		writeError(c, h.logger, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented token
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt, ok := MustGetToken(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "Sesión cerrada correctamente.")
}
