package repository

import (
	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	// GetByUsername ищет пользователя по точному (регистрозависимому) совпадению имени
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]entity.User, error)
}
