package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// AssignmentRepo реализует repository.AssignmentRepository
type AssignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo создает новый репозиторий назначений
func NewAssignmentRepo(db *gorm.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// Create создает новое назначение.
// Дубликат пары (quiz_id, user_id) ловится уникальным индексом и возвращается как ErrConflict.
func (r *AssignmentRepo) Create(assignment *entity.QuizAssignment) error {
	err := r.db.Create(assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByQuizAndUser возвращает назначение для пары (викторина, пользователь)
func (r *AssignmentRepo) GetByQuizAndUser(quizID, userID uint) (*entity.QuizAssignment, error) {
	var assignment entity.QuizAssignment
	err := r.db.Where("quiz_id = ? AND user_id = ?", quizID, userID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// Delete удаляет назначение для пары (викторина, пользователь)
func (r *AssignmentRepo) Delete(quizID, userID uint) error {
	result := r.db.Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Delete(&entity.QuizAssignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAll возвращает все назначения с викторинами и пользователями
func (r *AssignmentRepo) ListAll() ([]entity.QuizAssignment, error) {
	var assignments []entity.QuizAssignment
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Category").
		Preload("User").
		Order("id").
		Find(&assignments).Error
	return assignments, err
}

// ListByUser возвращает назначения пользователя с викторинами
func (r *AssignmentRepo) ListByUser(userID uint) ([]entity.QuizAssignment, error) {
	var assignments []entity.QuizAssignment
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Category").
		Where("user_id = ?", userID).
		Order("id").
		Find(&assignments).Error
	return assignments, err
}

// CountByUser возвращает количество назначений пользователя
func (r *AssignmentRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.QuizAssignment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListUpcomingByUser возвращает незавершенные назначения на будущие викторины
func (r *AssignmentRepo) ListUpcomingByUser(userID uint, now time.Time, limit int) ([]entity.QuizAssignment, error) {
	var assignments []entity.QuizAssignment
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Category").
		Joins("JOIN quizzes ON quizzes.id = quiz_assignments.quiz_id").
		Where("quiz_assignments.user_id = ? AND quiz_assignments.completed = false AND quizzes.start_time > ?", userID, now).
		Order("quizzes.start_time ASC").
		Limit(limit).
		Find(&assignments).Error
	return assignments, err
}

// CompleteInTx выполняет охраняемый переход completed false→true В ПЕРЕДАННОЙ ТРАНЗАКЦИИ.
// Условие completed = false в WHERE сериализует конкурентные сабмиты:
// только один из них увидит RowsAffected == 1.
func (r *AssignmentRepo) CompleteInTx(tx *gorm.DB, quizID, userID uint) (bool, error) {
	result := tx.Model(&entity.QuizAssignment{}).
		Where("quiz_id = ? AND user_id = ? AND completed = false", quizID, userID).
		Update("completed", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
