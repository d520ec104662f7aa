package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// ResultRow — строка результата с денормализованными названием викторины и категории
type ResultRow struct {
	ResultID       uint      `json:"result_id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	CategoryName   string    `json:"category_name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TakenAt        time.Time `json:"taken_at"`
}

// ResultRepository определяет методы для работы с результатами
type ResultRepository interface {
	// CreateInTx сохраняет результат В ПЕРЕДАННОЙ ТРАНЗАКЦИИ.
	// Дубликат пары (quiz_id, user_id) возвращается как apperrors.ErrConflict.
	CreateInTx(tx *gorm.DB, result *entity.QuizResult) error
	GetByID(id uint) (*entity.QuizResult, error)
	GetByQuizAndUser(quizID, userID uint) (*entity.QuizResult, error)
	// ListByUser возвращает все результаты пользователя, самые свежие первыми
	ListByUser(userID uint) ([]entity.QuizResult, error)
	// ListRecentByUser возвращает до limit последних результатов с названиями викторины и категории
	ListRecentByUser(userID uint, limit int) ([]ResultRow, error)
	CountByUser(userID uint) (int64, error)
	// ListKeys возвращает пары (quiz_id, user_id) всех результатов —
	// используется для вычисления статусов назначений без N+1 запросов
	ListKeys() ([]entity.QuizResult, error)
}
