package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"hrdesk/internal/export"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	trace         *telemetry.Trace
	exportService *service.ExportService
}

func NewExportHandler(trace *telemetry.Trace, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{trace: trace, exportService: exportService}
}

// Snapshot 匯出所有 slot
// @Summary 匯出所有 slot（json | yaml | xlsx）
// @Tags Export
// @Security BearerAuth
// @Produce json
// @Param format query string false "json | yaml | xlsx，預設 json"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /export [get]
func (h *ExportHandler) Snapshot(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatJSON)))
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.BadRequestParams(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.Snapshot(ctx, &buf, format); err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="hrdesk-snapshot.%s"`, format))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
