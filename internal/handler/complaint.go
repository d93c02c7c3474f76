package handler

import (
	"hrdesk/internal/dto"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	trace            *telemetry.Trace
	complaintService *service.ComplaintService
}

func NewComplaintHandler(trace *telemetry.Trace, complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{trace: trace, complaintService: complaintService}
}

// List 申訴列表
// @Summary 取得申訴列表
// @Tags Complaint
// @Security BearerAuth
// @Produce json
// @Param search query string false "申訴人、主旨或員工"
// @Param status query string false "active | in-progress | completed"
// @Param sort query string false "newest"
// @Success 200 {array} dto.ComplaintItemDto
// @Failure 400 {object} response.Response
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.ComplaintQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	items, err := h.complaintService.List(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, items)
}

// Get 取得申訴
// @Summary 取得申訴（含對應員工）
// @Tags Complaint
// @Security BearerAuth
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} dto.ComplaintDetailDto
// @Failure 404 {object} response.Response
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.complaintService.Get(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Create 新增申訴
// @Summary 新增申訴（四個欄位皆必填）
// @Tags Complaint
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateComplaintDto true "申訴"
// @Success 201 {object} model.Complaint
// @Failure 400 {object} response.Response
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateComplaintDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	complaint, err := h.complaintService.Create(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, complaint)
}

// ChangeStatus 變更狀態
// @Summary 變更申訴狀態
// @Tags Complaint
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param body body dto.UpdateComplaintStatusDto true "狀態"
// @Success 200 {object} model.Complaint
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/{id}/status [patch]
func (h *ComplaintHandler) ChangeStatus(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.UpdateComplaintStatusDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	complaint, err := h.complaintService.ChangeStatus(ctx, id, req.Status)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, complaint)
}

// Reply 回覆申訴
// @Summary 以 admin 身分回覆申訴（狀態不變）
// @Tags Complaint
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param body body dto.ComplaintReplyDto true "回覆"
// @Success 201 {object} model.Complaint
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/{id}/replies [post]
func (h *ComplaintHandler) Reply(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.ComplaintReplyDto
	if cause, respErr = validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	complaint, err := h.complaintService.Reply(ctx, id, req.Text)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, complaint)
}

// Delete 刪除申訴
// @Summary 刪除申訴
// @Tags Complaint
// @Security BearerAuth
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	id, cause, respErr := validate.ParseStringParam(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.complaintService.Delete(ctx, id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "complaint deleted"})
}
