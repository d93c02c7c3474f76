package router

import (
	"hrdesk/internal/handler"

	"github.com/gin-gonic/gin"
)

// WorkplaceRouter 設備、行事曆與活動
type WorkplaceRouter struct {
	facilityHandler *handler.FacilityHandler
	calendarHandler *handler.CalendarHandler
	eventHandler    *handler.EventHandler
}

func NewWorkplaceRouter(
	facilityHandler *handler.FacilityHandler,
	calendarHandler *handler.CalendarHandler,
	eventHandler *handler.EventHandler,
) *WorkplaceRouter {
	return &WorkplaceRouter{
		facilityHandler: facilityHandler,
		calendarHandler: calendarHandler,
		eventHandler:    eventHandler,
	}
}

func (wr *WorkplaceRouter) RegisterRoutes(r *gin.RouterGroup) {
	facilities := r.Group("/facilities")
	{
		facilities.GET("/inventory", wr.facilityHandler.Inventory)
		facilities.POST("/inventory", wr.facilityHandler.AddAsset)
		facilities.DELETE("/inventory/:item", wr.facilityHandler.DeleteItem)
		facilities.POST("/inventory/:item/add", wr.facilityHandler.AddQuantity)
		facilities.POST("/inventory/:item/remove", wr.facilityHandler.RemoveQuantity)
		facilities.POST("/inventory/:item/abandon", wr.facilityHandler.Abandon)
		facilities.GET("/abandoned", wr.facilityHandler.Abandoned)
		facilities.POST("/abandoned", wr.facilityHandler.AddAbandoned)
	}

	calendar := r.Group("/calendar")
	{
		calendar.GET("", wr.calendarHandler.List)
		calendar.POST("", wr.calendarHandler.Create)
		calendar.DELETE("/:id", wr.calendarHandler.Delete)
	}

	events := r.Group("/events")
	{
		events.GET("", wr.eventHandler.List)
		events.POST("", wr.eventHandler.Create)
		events.GET("/:id", wr.eventHandler.Get)
		events.PUT("/:id", wr.eventHandler.Update)
		events.DELETE("/:id", wr.eventHandler.Delete)
	}
}
