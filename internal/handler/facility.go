package handler

import (
	"context"

	"hrdesk/internal/dto"
	"hrdesk/internal/model"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/utils/validate"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	trace           *telemetry.Trace
	facilityService *service.FacilityService
}

func NewFacilityHandler(trace *telemetry.Trace, facilityService *service.FacilityService) *FacilityHandler {
	return &FacilityHandler{trace: trace, facilityService: facilityService}
}

// Inventory 庫存列表
// @Summary 取得庫存列表
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param search query string false "品名"
// @Success 200 {array} model.InventoryItem
// @Router /facilities/inventory [get]
func (h *FacilityHandler) Inventory(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var query dto.InventoryQuery
	if cause, respErr := validate.BindQuery(c, &query); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	items, err := h.facilityService.Inventory(ctx, query)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, items)
}

// AddAsset 新增資產
// @Summary 新增庫存品項（數量 0 為 Out of Stock）
// @Tags Facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateInventoryDto true "品項"
// @Success 201 {object} model.InventoryItem
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /facilities/inventory [post]
func (h *FacilityHandler) AddAsset(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateInventoryDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	item, err := h.facilityService.AddAsset(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, item)
}

// AddQuantity 數量 +1
// @Summary 庫存數量加一
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param item path string true "品名"
// @Success 200 {object} model.InventoryItem
// @Failure 404 {object} response.Response
// @Router /facilities/inventory/{item}/add [post]
func (h *FacilityHandler) AddQuantity(c *gin.Context) {
	h.adjust(c, h.facilityService.AddQuantity)
}

// RemoveQuantity 數量 -1
// @Summary 庫存數量減一（最低 0）
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param item path string true "品名"
// @Success 200 {object} model.InventoryItem
// @Failure 404 {object} response.Response
// @Router /facilities/inventory/{item}/remove [post]
func (h *FacilityHandler) RemoveQuantity(c *gin.Context) {
	h.adjust(c, h.facilityService.RemoveQuantity)
}

// Abandon 移到報廢
// @Summary 將一件庫存移到報廢清單
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param item path string true "品名"
// @Success 201 {object} model.AbandonedItem
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /facilities/inventory/{item}/abandon [post]
func (h *FacilityHandler) Abandon(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	name, cause, respErr := validate.ParseStringParam(c, "item")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	abandoned, err := h.facilityService.Abandon(ctx, name)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, abandoned)
}

// DeleteItem 刪除品項
// @Summary 刪除庫存品項
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param item path string true "品名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /facilities/inventory/{item} [delete]
func (h *FacilityHandler) DeleteItem(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	name, cause, respErr := validate.ParseStringParam(c, "item")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.facilityService.DeleteItem(ctx, name); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "inventory item deleted"})
}

// Abandoned 報廢清單
// @Summary 取得報廢清單
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.AbandonedItem
// @Router /facilities/abandoned [get]
func (h *FacilityHandler) Abandoned(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	items, err := h.facilityService.Abandoned(ctx)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, items)
}

// AddAbandoned 手動新增報廢
// @Summary 手動新增報廢品項（原因預設 Not Specified）
// @Tags Facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateAbandonedDto true "報廢品項"
// @Success 201 {object} model.AbandonedItem
// @Failure 400 {object} response.Response
// @Router /facilities/abandoned [post]
func (h *FacilityHandler) AddAbandoned(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	var req dto.CreateAbandonedDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	item, err := h.facilityService.AddAbandoned(ctx, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, item)
}

func (h *FacilityHandler) adjust(c *gin.Context, fn func(context.Context, string) (*model.InventoryItem, error)) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)
	name, cause, respErr := validate.ParseStringParam(c, "item")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	item, err := fn(ctx, name)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, item)
}
