package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// AssignmentRepository определяет методы для работы с назначениями викторин
type AssignmentRepository interface {
	Create(assignment *entity.QuizAssignment) error
	GetByQuizAndUser(quizID, userID uint) (*entity.QuizAssignment, error)
	// Delete удаляет назначение; возвращает apperrors.ErrNotFound, если строки не было
	Delete(quizID, userID uint) error
	// ListAll возвращает все назначения с предзагруженными викторинами и пользователями
	ListAll() ([]entity.QuizAssignment, error)
	// ListByUser возвращает назначения пользователя с предзагруженными викторинами
	ListByUser(userID uint) ([]entity.QuizAssignment, error)
	CountByUser(userID uint) (int64, error)
	// ListUpcomingByUser возвращает незавершенные назначения на викторины,
	// начинающиеся после now, в порядке возрастания start_time
	ListUpcomingByUser(userID uint, now time.Time, limit int) ([]entity.QuizAssignment, error)
	// CompleteInTx выполняет охраняемый переход completed false→true В ПЕРЕДАННОЙ ТРАНЗАКЦИИ.
	// Возвращает false, если назначение отсутствует или уже завершено.
	CompleteInTx(tx *gorm.DB, quizID, userID uint) (bool, error)
}
