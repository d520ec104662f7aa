package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/handler/dto"
	"github.com/yourusername/quizhub-api/internal/handler/helper"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/internal/service"
)

// AuthHandler обрабатывает запросы, связанные с аутентификацией
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register обрабатывает запрос на регистрацию
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	user, err := h.authService.RegisterUser(req.Username, req.Password, req.Role, req.Email)
	if err != nil {
		// Занятое имя при регистрации отвечает 400, а не 409
		if errors.Is(err, apperrors.ErrConflict) {
			helper.FailWithStatus(c, http.StatusBadRequest, err)
			return
		}
		helper.Fail(c, err)
		return
	}

	log.Printf("[AuthHandler] Пользователь ID=%d (%s) успешно зарегистрирован", user.ID, user.Username)
	helper.OK(c, http.StatusCreated, "user registered", dto.NewUserResponse(user))
}

// Login обрабатывает запрос на вход
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.FailValidation(c, err.Error())
		return
	}

	tokenResp, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		helper.Fail(c, err)
		return
	}

	helper.OK(c, http.StatusOK, "login successful", tokenResp)
}
