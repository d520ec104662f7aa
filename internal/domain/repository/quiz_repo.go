package repository

import (
	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с викторинами
type QuizRepository interface {
	// Create сохраняет викторину вместе со связями quiz_questions
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает викторину с категорией, вопросами и вариантами
	GetWithQuestions(id uint) (*entity.Quiz, error)
	List() ([]entity.Quiz, error)
	Update(quiz *entity.Quiz) error
	// ReplaceQuestions заменяет набор связанных вопросов викторины
	ReplaceQuestions(quiz *entity.Quiz, questions []entity.Question) error
	Delete(id uint) error
}
