package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
	"github.com/yourusername/quizhub-api/pkg/auth"
)

// AuthService предоставляет методы для регистрации и входа пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// TokenResponse содержит выданный токен и данные пользователя
type TokenResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// RegisterUser регистрирует нового пользователя.
// Проверка занятости имени регистрозависимая: "admin" и "Admin" — разные имена.
func (s *AuthService) RegisterUser(username, password, role, email string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("имя пользователя и пароль обязательны: %w", apperrors.ErrValidation)
	}
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("недопустимая роль '%s': %w", role, apperrors.ErrValidation)
	}

	// Проверяем занятость имени пользователя
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, fmt.Errorf("имя пользователя '%s' уже занято: %w", username, apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &entity.User{
		Username: username,
		Password: password, // Хешируется в BeforeSave
		Role:     role,
		Email:    strings.TrimSpace(email),
	}

	if err := s.userRepo.Create(user); err != nil {
		// Гонка двух регистраций: уникальный индекс возвращает ErrConflict
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("имя пользователя '%s' уже занято: %w", username, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Пользователь '%s' (role=%s) зарегистрирован с ID=%d", user.Username, user.Role, user.ID)
	return user, nil
}

// LoginUser проверяет учетные данные и выдает подписанный токен
func (s *AuthService) LoginUser(username, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Не раскрываем, что именно не совпало
			return nil, fmt.Errorf("неверное имя пользователя или пароль: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Неудачная попытка входа для пользователя '%s'", username)
		return nil, fmt.Errorf("неверное имя пользователя или пароль: %w", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("[AuthService] Пользователь '%s' (role=%s) успешно вошел", user.Username, user.Role)
	return &TokenResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	}, nil
}

// GetUserByID возвращает пользователя по ID
func (s *AuthService) GetUserByID(id uint) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}
