package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// ResultService отвечает за прохождение викторин и подсчет результатов
type ResultService struct {
	db             *gorm.DB
	quizRepo       repository.QuizRepository
	assignmentRepo repository.AssignmentRepository
	resultRepo     repository.ResultRepository
	cacheRepo      repository.CacheRepository
}

// NewResultService создает новый сервис результатов.
// cacheRepo может быть nil — тогда инвалидация кеша пропускается.
func NewResultService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	assignmentRepo repository.AssignmentRepository,
	resultRepo repository.ResultRepository,
	cacheRepo repository.CacheRepository,
) *ResultService {
	return &ResultService{
		db:             db,
		quizRepo:       quizRepo,
		assignmentRepo: assignmentRepo,
		resultRepo:     resultRepo,
		cacheRepo:      cacheRepo,
	}
}

// TakeQuiz возвращает викторину для прохождения.
// Доступна только по активному (незавершенному) назначению — иначе ErrNotFound,
// чтобы не раскрывать пользователю существование чужих викторин.
func (s *ResultService) TakeQuiz(quizID, userID uint) (*entity.Quiz, error) {
	assignment, err := s.assignmentRepo.GetByQuizAndUser(quizID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("викторина %d не назначена пользователю: %w", quizID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if assignment.Completed {
		return nil, fmt.Errorf("викторина %d уже пройдена: %w", quizID, apperrors.ErrNotFound)
	}

	return s.quizRepo.GetWithQuestions(quizID)
}

// SubmitQuiz принимает ответы, подсчитывает балл и атомарно фиксирует результат.
// answers — отображение ID вопроса в ID выбранного варианта; пропущенные
// и невалидные ответы считаются неверными. Повторная отправка — конфликт.
func (s *ResultService) SubmitQuiz(quizID, userID uint, answers map[uint]uint) (*entity.QuizResult, error) {
	assignment, err := s.assignmentRepo.GetByQuizAndUser(quizID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("викторина %d не назначена пользователю: %w", quizID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if assignment.Completed {
		return nil, fmt.Errorf("результат по викторине %d уже зафиксирован: %w", quizID, apperrors.ErrConflict)
	}

	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	score := scoreAnswers(quiz.Questions, answers)

	result := &entity.QuizResult{
		QuizID:         quizID,
		UserID:         userID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		TakenAt:        time.Now(),
	}

	// Охраняемый переход completed false→true и вставка результата — одна транзакция.
	// Проигравший гонку параллельный submit получает ErrConflict.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		completed, err := s.assignmentRepo.CompleteInTx(tx, quizID, userID)
		if err != nil {
			return fmt.Errorf("failed to complete assignment: %w", err)
		}
		if !completed {
			return fmt.Errorf("результат по викторине %d уже зафиксирован: %w", quizID, apperrors.ErrConflict)
		}
		if err := s.resultRepo.CreateInTx(tx, result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ResultService] Пользователь ID=%d завершил викторину ID=%d: %d/%d",
		userID, quizID, result.Score, result.TotalQuestions)

	// Сводка дашборда устарела — сбрасываем кеш (best-effort)
	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(dashboardSummaryKey(userID)); err != nil {
			log.Printf("[ResultService] Не удалось сбросить кеш дашборда пользователя ID=%d: %v", userID, err)
		}
	}

	return result, nil
}

// GetUserResults возвращает все результаты пользователя, самые свежие первыми
func (s *ResultService) GetUserResults(userID uint) ([]entity.QuizResult, error) {
	return s.resultRepo.ListByUser(userID)
}

// GetResultByID возвращает результат по ID.
// Чужие результаты не раскрываются: для не-владельца возвращается ErrNotFound.
func (s *ResultService) GetResultByID(resultID, requesterID uint, requesterIsAdmin bool) (*entity.QuizResult, error) {
	result, err := s.resultRepo.GetByID(resultID)
	if err != nil {
		return nil, err
	}
	if !requesterIsAdmin && result.UserID != requesterID {
		return nil, fmt.Errorf("результат %d: %w", resultID, apperrors.ErrNotFound)
	}
	return result, nil
}

// scoreAnswers подсчитывает количество вопросов, на которые выбран правильный вариант.
// Вопрос без единственного правильного варианта не засчитывается никому.
func scoreAnswers(questions []entity.Question, answers map[uint]uint) int {
	score := 0
	for _, q := range questions {
		correctID, ok := q.CorrectOptionID()
		if !ok {
			continue
		}
		if chosen, answered := answers[q.ID]; answered && chosen == correctID {
			score++
		}
	}
	return score
}
