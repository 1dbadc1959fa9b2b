package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// DashboardHandler exposes the admin dashboard overview
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview handles GET /api/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, overview)
}
