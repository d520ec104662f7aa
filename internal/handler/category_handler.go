package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/internal/middleware"
	"github.com/yourusername/quizhub-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest представляет запрос на создание/обновление категории
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateCategory обрабатывает запрос на создание категории
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusCreated, "category created", category)
}

// GetCategory возвращает категорию по ID
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id := middleware.UintParam(c, "categoryID")

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "category", category)
}

// ListCategories возвращает все категории
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "categories", categories)
}

// UpdateCategory обрабатывает запрос на обновление категории
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := middleware.UintParam(c, "categoryID")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "category updated", category)
}

// DeleteCategory обрабатывает запрос на удаление категории
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := middleware.UintParam(c, "categoryID")

	if err := h.categoryService.DeleteCategory(id); err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "category deleted", nil)
}
