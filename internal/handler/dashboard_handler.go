package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/internal/service"
)

// DashboardHandler обрабатывает запросы к сводке дашборда
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler создает новый обработчик дашборда
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary возвращает агрегированную сводку текущего пользователя
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	summary, err := h.dashboardService.Summary(userID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "dashboard summary", summary)
}
