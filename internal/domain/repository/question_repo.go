package repository

import (
	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create сохраняет вопрос вместе с вариантами ответа
	Create(question *entity.Question) error
	// GetByID возвращает вопрос с загруженными вариантами ответа
	GetByID(id uint) (*entity.Question, error)
	// GetByIDs возвращает вопросы по списку ID (с вариантами)
	GetByIDs(ids []uint) ([]entity.Question, error)
	List() ([]entity.Question, error)
	// ReplaceWithOptions атомарно обновляет вопрос и заменяет весь набор вариантов
	ReplaceWithOptions(question *entity.Question) error
	Delete(id uint) error
	// CountQuizLinks возвращает количество викторин, ссылающихся на вопрос
	CountQuizLinks(questionID uint) (int64, error)
}

// OptionRepository определяет методы для работы с вариантами ответа
type OptionRepository interface {
	Create(option *entity.Option) error
	GetByID(id uint) (*entity.Option, error)
	ListByQuestion(questionID uint) ([]entity.Option, error)
	Update(option *entity.Option) error
	Delete(id uint) error
}
