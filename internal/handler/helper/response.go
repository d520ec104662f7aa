package helper

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// Response — единый конверт всех ответов API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK отправляет успешный ответ с данными
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail отправляет ответ об ошибке, подбирая HTTP статус по типу ошибки
func Fail(c *gin.Context, err error) {
	c.JSON(statusFromError(err), Response{
		Success: false,
		Message: publicMessage(err),
	})
}

// FailWithStatus отправляет ответ об ошибке с явным HTTP статусом.
// Нужен для случаев, где статус отличается от стандартного отображения
// (например, конфликт имени при регистрации отвечает 400).
func FailWithStatus(c *gin.Context, status int, err error) {
	c.JSON(status, Response{
		Success: false,
		Message: publicMessage(err),
	})
}

// FailValidation отправляет 400 с текстом ошибки привязки запроса
func FailValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// statusFromError отображает ошибки приложения на HTTP статусы
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage возвращает текст ошибки для клиента.
// Внутренние ошибки не раскрываются — клиент видит общее сообщение.
func publicMessage(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		log.Printf("[HTTP] Внутренняя ошибка: %v", err)
		return "internal server error"
	}
	return err.Error()
}
