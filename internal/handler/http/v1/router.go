package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты для управления ЧС и назначениями
	emergencies := protected.Group("/emergency")
	{
		emergencies.GET("", h.listEmergencies)
		emergencies.POST("", h.createEmergency)
		emergencies.GET("/:id", h.getEmergency)
		emergencies.PUT("/:id", h.updateEmergency)
		emergencies.POST("/:id/responders", h.assignResponder)
		emergencies.GET("/:id/responders", h.getEmergencyWithResponders)
		emergencies.GET("/:id/responders/nearest", h.nearestResponders)
		emergencies.DELETE("/:id/responders/:responderId", h.unassignResponder)
	}

	// Маршруты для управления спасателями
	responders := protected.Group("/responders")
	{
		responders.GET("", h.listResponders)
		responders.GET("/available", h.listAvailableResponders)
		responders.POST("", h.createResponder)
		responders.GET("/:id", h.getResponder)
		responders.PUT("/:id", h.updateResponder)
		responders.PATCH("/:id/status", h.updateResponderStatus)
	}

	protected.GET("/stats", h.getStats)
}
