package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/Yojipoji28/control-escolar-desit-api/pkg/errors"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/validate"
)

// writeError maps service errors: ValidationError 400, NotFoundError 404,
// anything else is logged and answered with 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(c, validationErr.Message)
	case errors.As(err, &notFoundErr):
		response.NotFound(c, notFoundErr.Message)
	default:
		logger.Error("error no controlado",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}

// bindJSON binds and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.BadRequest(c, validate.Message(err))
		return false
	}
	return true
}
