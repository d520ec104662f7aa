package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает вопрос вместе с вариантами ответа
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос с вариантами ответа
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Options").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByIDs возвращает вопросы по списку ID с вариантами ответа
func (r *QuestionRepo) GetByIDs(ids []uint) ([]entity.Question, error) {
	var questions []entity.Question
	if len(ids) == 0 {
		return questions, nil
	}
	err := r.db.Preload("Options").Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

// List возвращает все вопросы с вариантами ответа
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Preload("Options").Order("id").Find(&questions).Error
	return questions, err
}

// ReplaceWithOptions обновляет вопрос и заменяет весь набор вариантов одной транзакцией.
// Замена намеренно деструктивна: старые варианты удаляются, новые создаются заново.
func (r *QuestionRepo) ReplaceWithOptions(question *entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", question.ID).Delete(&entity.Option{}).Error; err != nil {
			return err
		}

		// Сбрасываем ID вариантов, чтобы GORM создал их заново
		for i := range question.Options {
			question.Options[i].ID = 0
			question.Options[i].QuestionID = question.ID
		}

		if err := tx.Omit("Options").Save(question).Error; err != nil {
			return err
		}
		if len(question.Options) > 0 {
			if err := tx.Create(&question.Options).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete удаляет вопрос (варианты удаляются каскадно)
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountQuizLinks возвращает количество связей вопроса с викторинами
func (r *QuestionRepo) CountQuizLinks(questionID uint) (int64, error) {
	var count int64
	err := r.db.Table("quiz_questions").Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}
