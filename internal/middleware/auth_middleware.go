package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/handler/helper"
	"github.com/yourusername/quizhub-api/pkg/auth"
)

// Ключи контекста Gin, устанавливаемые RequireAuth
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth проверяет Bearer токен и кладет данные пользователя в контекст
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, helper.Response{
				Success: false,
				Message: "authorization header is required",
			})
			return
		}

		// Ожидаемый формат: Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, helper.Response{
				Success: false,
				Message: "authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, helper.Response{
				Success: false,
				Message: "invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью.
// Должен применяться ПОСЛЕ RequireAuth.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimRole, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, helper.Response{
				Success: false,
				Message: "unauthorized",
			})
			return
		}

		actual, ok := claimRole.(string)
		// Роль вне закрытого набора отклоняется, а не пропускается
		if !ok || !entity.IsValidRole(actual) || actual != role {
			userID, _ := c.Get(ContextUserID)
			log.Printf("[AuthMiddleware] Доступ запрещен: пользователь ID=%v с ролью '%v' запросил маршрут для роли '%s'",
				userID, claimRole, role)
			c.AbortWithStatusJSON(http.StatusForbidden, helper.Response{
				Success: false,
				Message: "insufficient role",
			})
			return
		}

		c.Next()
	}
}

// CurrentUserID извлекает ID аутентифицированного пользователя из контекста
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentRole извлекает роль аутентифицированного пользователя из контекста
func CurrentRole(c *gin.Context) string {
	value, exists := c.Get(ContextRole)
	if !exists {
		return ""
	}
	role, _ := value.(string)
	return role
}
