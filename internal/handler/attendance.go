package handler

import (
	"bytes"
	"net/http"

	"hrdesk/internal/dto"
	"hrdesk/internal/export"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	trace             *telemetry.Trace
	attendanceService *service.AttendanceService
	exportService     *service.ExportService
}

func NewAttendanceHandler(
	trace *telemetry.Trace,
	attendanceService *service.AttendanceService,
	exportService *service.ExportService,
) *AttendanceHandler {
	return &AttendanceHandler{trace: trace, attendanceService: attendanceService, exportService: exportService}
}

// List 出勤紀錄
// @Summary 取得出勤紀錄與統計
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param search query string false "員工姓名或職稱"
// @Param status query string false "present | absent | late | half-day"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.AttendanceListDto
// @Failure 400 {object} response.Response
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.AttendanceQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.attendanceService.List(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Stats 出勤統計
// @Summary 出勤狀態統計
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AttendanceStats
// @Router /attendance/stats [get]
func (h *AttendanceHandler) Stats(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	stats, err := h.attendanceService.Stats(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, stats)
}

// Create 新增出勤紀錄
// @Summary 新增出勤紀錄
// @Tags Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateAttendanceDto true "出勤資料"
// @Success 201 {object} model.AttendanceRecord
// @Failure 400 {object} response.Response
// @Router /attendance [post]
func (h *AttendanceHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateAttendanceDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	record, err := h.attendanceService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, record)
}

// Export 匯出出勤 xlsx
// @Summary 匯出出勤紀錄為 Excel
// @Tags Attendance
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /attendance/export [get]
func (h *AttendanceHandler) Export(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	// 先寫進 buffer，失敗時還能回 JSON 錯誤
	var buf bytes.Buffer
	if err := h.exportService.Attendance(ctx, &buf); err != nil {
		response.AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	c.Data(http.StatusOK, export.FormatXLSX.ContentType(), buf.Bytes())
}
