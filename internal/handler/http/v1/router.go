package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	device := DeviceIDMiddleware(h.logger)

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/top", h.topIncidents)
		incidents.GET("/count", h.countIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/upvote", device, h.upvoteIncident)
	}

	hazards := api.Group("/hazards")
	{
		hazards.GET("", h.listHazards)
		hazards.POST("", h.createHazard)
		hazards.GET("/:id", h.getHazard)
		hazards.POST("/:id/upvote", device, h.upvoteHazard)
	}

	api.GET("/reports/:id/upvoted", device, h.hasUpvoted)
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
