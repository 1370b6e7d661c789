package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limpanome/crm_backend/internal/core/store"
	"github.com/limpanome/crm_backend/internal/dto"
)

// dashboardHandler serves the aggregated book overview.
type dashboardHandler struct {
	stores *store.Manager
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, stores *store.Manager) {
	h := &dashboardHandler{stores: stores}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
	}
}

// getStats godoc
// @Summary Get dashboard statistics
// @Description Recomputes contract counts, revenue and outstanding balance from the current book
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	s, ok := storeForRequest(c, h.stores)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(s.Stats()))
}
