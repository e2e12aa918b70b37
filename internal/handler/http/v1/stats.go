package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get dashboard statistics
// @Description Count active emergencies, all responders and available responders. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Response{data=StatsResponse}
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.entry(c, "getStats")

	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.fail(c, log, err, "Error fetching dashboard stats")
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Stats fetched", Data: ModelToStatsResponse(stats)})
}
