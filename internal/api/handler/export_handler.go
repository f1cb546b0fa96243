package handler

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/service"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/response"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/validate"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler file download HTTP handler
type ExportHandler struct {
	exportSvc service.ExportService
	logger    *zap.Logger
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, logger: logger}
}

// ExportMaterias downloads the materia listing
// GET /materias/export?formato=xlsx|pdf
func (h *ExportHandler) ExportMaterias(c *gin.Context) {
	var req dto.ExportMateriasRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, validate.Message(err))
		return
	}

	var (
		buf         *bytes.Buffer
		filename    string
		contentType string
		err         error
	)
	switch req.Formato {
	case "pdf":
		buf, filename, err = h.exportSvc.ExportMateriasPDF(c.Request.Context())
		contentType = contentTypePDF
	default:
		buf, filename, err = h.exportSvc.ExportMateriasXLSX(c.Request.Context())
		contentType = contentTypeXLSX
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	sendFile(c, buf, filename, contentType)
}

// Calendario downloads the weekly calendar of one materia
// GET /materias/:id_materia/calendario
func (h *ExportHandler) Calendario(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportMateriaICS(c.Request.Context(), dto.ParseLookupID(c.Param("id_materia")))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	sendFile(c, buf, filename, contentTypeICS)
}

func sendFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
