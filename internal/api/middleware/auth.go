package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/api/handler"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth validates the Bearer access token and injects the session into
// the context. A nil checker skips the revocation lookup.
func JWTAuth(jwtMgr *jwt.Manager, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Falta el encabezado de autorización.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Encabezado de autorización inválido.")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, "Token inválido o expirado.")
			c.Abort()
			return
		}

		if revoked != nil && claims.ID != "" {
			// lookup errors fail open, like RateLimit
			if blacklisted, err := revoked.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && blacklisted {
				response.Unauthorized(c, "Sesión revocada.")
				c.Abort()
				return
			}
		}

		c.Set(handler.CtxUserID, claims.UserID)
		c.Set(handler.CtxRole, claims.Role)
		c.Set(handler.CtxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(handler.CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth lets through only sessions holding one of the allowed roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(handler.CtxRole)
		if role == "" {
			response.Unauthorized(c, "No autenticado.")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "No tiene permisos para esta operación.")
		c.Abort()
	}
}
