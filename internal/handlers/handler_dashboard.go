package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getOverview)
}

// getOverview godoc
// @Summary Dashboard overview
// @Description Ledger summary and task statistics for the date range, plus quote and contract statistics
// @Tags dashboard
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Security CookieAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	window, err := params.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	overview, err := h.dashboardService.GetOverview(c.Request.Context(), window)
	if err != nil {
		respondError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*overview, window))
}
