package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
)

// TotalesHandler dashboard counts HTTP handler
type TotalesHandler struct {
	totalesSvc service.TotalesService
	logger     *zap.Logger
}

// NewTotalesHandler creates a TotalesHandler
func NewTotalesHandler(totalesSvc service.TotalesService, logger *zap.Logger) *TotalesHandler {
	return &TotalesHandler{totalesSvc: totalesSvc, logger: logger}
}

// Get profile counts
// GET /totales-usuarios
func (h *TotalesHandler) Get(c *gin.Context) {
	totales, err := h.totalesSvc.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	response.OK(c, totales)
}
