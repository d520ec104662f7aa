package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// CreateInTx сохраняет результат В ПЕРЕДАННОЙ ТРАНЗАКЦИИ.
// Уникальный индекс (quiz_id, user_id) — последняя линия защиты от двойного результата.
func (r *ResultRepo) CreateInTx(tx *gorm.DB, result *entity.QuizResult) error {
	err := tx.Create(result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID возвращает результат по ID с викториной и категорией
func (r *ResultRepo) GetByID(id uint) (*entity.QuizResult, error) {
	var result entity.QuizResult
	err := r.db.Preload("Quiz").Preload("Quiz.Category").First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// GetByQuizAndUser возвращает результат для пары (викторина, пользователь)
func (r *ResultRepo) GetByQuizAndUser(quizID, userID uint) (*entity.QuizResult, error) {
	var result entity.QuizResult
	err := r.db.Where("quiz_id = ? AND user_id = ?", quizID, userID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ListByUser возвращает все результаты пользователя, самые свежие первыми
func (r *ResultRepo) ListByUser(userID uint) ([]entity.QuizResult, error) {
	var results []entity.QuizResult
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Category").
		Where("user_id = ?", userID).
		Order("taken_at DESC").
		Find(&results).Error
	return results, err
}

// ListRecentByUser возвращает до limit последних результатов
// с денормализованными названиями викторины и категории
func (r *ResultRepo) ListRecentByUser(userID uint, limit int) ([]repository.ResultRow, error) {
	var rows []repository.ResultRow
	err := r.db.Model(&entity.QuizResult{}).
		Select("quiz_results.id AS result_id, quiz_results.quiz_id, quizzes.title AS quiz_title, "+
			"categories.name AS category_name, quiz_results.score, quiz_results.total_questions, quiz_results.taken_at").
		Joins("JOIN quizzes ON quizzes.id = quiz_results.quiz_id").
		Joins("JOIN categories ON categories.id = quizzes.category_id").
		Where("quiz_results.user_id = ?", userID).
		Order("quiz_results.taken_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CountByUser возвращает количество результатов пользователя
func (r *ResultRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.QuizResult{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListKeys возвращает пары (quiz_id, user_id) всех результатов
func (r *ResultRepo) ListKeys() ([]entity.QuizResult, error) {
	var keys []entity.QuizResult
	err := r.db.Model(&entity.QuizResult{}).Select("quiz_id", "user_id").Find(&keys).Error
	return keys, err
}
