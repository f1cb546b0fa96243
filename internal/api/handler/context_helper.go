package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// Context keys set by the JWT middleware.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxTokenJTI = "token_jti"
	CtxTokenExp = "token_exp"
)

const msgNoAutenticado = "No autenticado."

// MustGetUserID reads the authenticated user id. When the JWT middleware did
// not run it writes 401 and returns false; callers should return immediately.
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		response.Unauthorized(c, msgNoAutenticado)
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, msgNoAutenticado)
		return 0, false
	}
	return id, true
}

// MustGetToken reads the id and expiry of the presented access token.
func MustGetToken(c *gin.Context) (string, time.Time, bool) {
	jti := c.GetString(CtxTokenJTI)
	exp, ok := c.Get(CtxTokenExp)
	if jti == "" || !ok {
		response.Unauthorized(c, msgNoAutenticado)
		return "", time.Time{}, false
	}
	expiresAt, ok := exp.(time.Time)
	if !ok {
		response.Unauthorized(c, msgNoAutenticado)
		return "", time.Time{}, false
	}
	return jti, expiresAt, true
}
