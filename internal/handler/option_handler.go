package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	"github.com/yourusername/quizhub-api/internal/service"
)

// OptionHandler обрабатывает запросы, связанные с вариантами ответа
type OptionHandler struct {
	optionService *service.OptionService
}

// NewOptionHandler создает новый обработчик вариантов ответа
func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

// CreateOptionRequest представляет запрос на создание варианта ответа
type CreateOptionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"text" binding:"required,max=300"`
	IsCorrect  bool   `json:"is_correct"`
}

// UpdateOptionRequest представляет запрос на обновление варианта ответа
type UpdateOptionRequest struct {
	Text      string `json:"text" binding:"required,max=300"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateOption обрабатывает запрос на создание варианта ответа
func (h *OptionHandler) CreateOption(c *gin.Context) {
	var req CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	option, err := h.optionService.CreateOption(req.QuestionID, req.Text, req.IsCorrect)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "option created", option)
}

// GetOption возвращает вариант ответа по ID
func (h *OptionHandler) GetOption(c *gin.Context) {
	id := middleware.UintParam(c, "optionID")

	option, err := h.optionService.GetOption(id)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "option", option)
}

// ListOptionsByQuestion возвращает варианты ответа вопроса
func (h *OptionHandler) ListOptionsByQuestion(c *gin.Context) {
	questionID := middleware.UintParam(c, "questionID")

	options, err := h.optionService.ListOptionsByQuestion(questionID)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "options", options)
}

// UpdateOption обрабатывает запрос на обновление варианта ответа
func (h *OptionHandler) UpdateOption(c *gin.Context) {
	id := middleware.UintParam(c, "optionID")

	var req UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	option, err := h.optionService.UpdateOption(id, req.Text, req.IsCorrect)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "option updated", option)
}

// DeleteOption обрабатывает запрос на удаление варианта ответа
func (h *OptionHandler) DeleteOption(c *gin.Context) {
	id := middleware.UintParam(c, "optionID")

	if err := h.optionService.DeleteOption(id); err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "option deleted", nil)
}
