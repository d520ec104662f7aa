package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create создает викторину вместе со связями quiz_questions.
// Omit("Questions.*") гарантирует, что сами вопросы не пересоздаются —
// вставляются только строки join-таблицы.
func (r *QuizRepo) Create(quiz *entity.Quiz) error {
	return r.db.Omit("Questions.*").Create(quiz).Error
}

// GetByID возвращает викторину по ID
func (r *QuizRepo) GetByID(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions возвращает викторину с категорией, вопросами и вариантами ответа
func (r *QuizRepo) GetWithQuestions(id uint) (*entity.Quiz, error) {
	var quiz entity.Quiz
	err := r.db.
		Preload("Category").
		Preload("Questions").
		Preload("Questions.Options").
		First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// List возвращает все викторины с категориями
func (r *QuizRepo) List() ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	err := r.db.Preload("Category").Order("id").Find(&quizzes).Error
	return quizzes, err
}

// Update обновляет поля викторины без затрагивания связей
func (r *QuizRepo) Update(quiz *entity.Quiz) error {
	return r.db.Omit("Questions", "Category").Save(quiz).Error
}

// ReplaceQuestions заменяет набор связанных вопросов викторины
func (r *QuizRepo) ReplaceQuestions(quiz *entity.Quiz, questions []entity.Question) error {
	return r.db.Model(quiz).Association("Questions").Replace(questions)
}

// Delete удаляет викторину; связи, назначения и результаты удаляются каскадно (см. миграции)
func (r *QuizRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
