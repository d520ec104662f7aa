package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// OptionRepo реализует repository.OptionRepository
type OptionRepo struct {
	db *gorm.DB
}

// NewOptionRepo создает новый репозиторий вариантов ответа
func NewOptionRepo(db *gorm.DB) *OptionRepo {
	return &OptionRepo{db: db}
}

// Create создает новый вариант ответа
func (r *OptionRepo) Create(option *entity.Option) error {
	return r.db.Create(option).Error
}

// GetByID возвращает вариант ответа по ID
func (r *OptionRepo) GetByID(id uint) (*entity.Option, error) {
	var option entity.Option
	err := r.db.First(&option, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

// ListByQuestion возвращает все варианты ответа для вопроса
func (r *OptionRepo) ListByQuestion(questionID uint) ([]entity.Option, error) {
	var options []entity.Option
	err := r.db.Where("question_id = ?", questionID).Order("id").Find(&options).Error
	return options, err
}

// Update обновляет вариант ответа
func (r *OptionRepo) Update(option *entity.Option) error {
	return r.db.Save(option).Error
}

// Delete удаляет вариант ответа
func (r *OptionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Option{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
