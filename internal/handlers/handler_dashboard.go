package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finman-app/finman_backend/internal/core/ports/services"
	"github.com/finman-app/finman_backend/internal/dto"
	"github.com/finman-app/finman_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard view.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get dashboard summary
// @Description Aggregates the authenticated user's total balance, recent transactions and active goals. Sections that failed to load are named in failedLoads.
// @Tags dashboard
// @Produce  json
// @Param   recentLimit query int false "How many recent transactions to include" default(5)
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	load, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, params.RecentLimit)
	if err != nil {
		respondServiceError(c, logger, err, "dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(load, time.Now()))
}
