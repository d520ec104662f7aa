package repository

import (
	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id uint) (*entity.Category, error)
	// GetByNameFold ищет категорию по имени без учета регистра
	GetByNameFold(name string) (*entity.Category, error)
	List() ([]entity.Category, error)
	Update(category *entity.Category) error
	Delete(id uint) error
	// CountQuestions возвращает количество вопросов, принадлежащих категории
	CountQuestions(categoryID uint) (int64, error)
}
