package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/handler/dto"
	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/internal/service"
)

// ResultHandler обрабатывает запросы к результатам прохождения
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler создает новый обработчик результатов
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// ListMyResults возвращает все результаты текущего пользователя
func (h *ResultHandler) ListMyResults(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}

	results, err := h.resultService.GetUserResults(userID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "my results", dto.NewResultResponseList(results))
}

// GetResult возвращает результат по ID.
// Пользователь видит только собственные результаты.
func (h *ResultHandler) GetResult(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		helper.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	resultID := middleware.UintParam(c, "resultID")

	isAdmin := middleware.CurrentRole(c) == entity.RoleAdmin
	result, err := h.resultService.GetResultByID(resultID, userID, isAdmin)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "result", dto.NewResultResponse(result))
}
