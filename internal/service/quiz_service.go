package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// QuizService предоставляет методы для работы с викторинами и журналом назначений
type QuizService struct {
	quizRepo       repository.QuizRepository
	questionRepo   repository.QuestionRepository
	categoryRepo   repository.CategoryRepository
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	resultRepo     repository.ResultRepository
	emailService   EmailService
}

// AssignedQuizInfo — строка журнала назначений с производным статусом
type AssignedQuizInfo struct {
	AssignmentID uint      `json:"assignment_id"`
	QuizID       uint      `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	CategoryName string    `json:"category_name"`
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Completed    bool      `json:"completed"`
	Status       string    `json:"status"` // Completed | Missed | Upcoming | Available
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	assignmentRepo repository.AssignmentRepository,
	resultRepo repository.ResultRepository,
	emailService EmailService,
) *QuizService {
	return &QuizService{
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		resultRepo:     resultRepo,
		emailService:   emailService,
	}
}

// CreateQuiz создает новую викторину со ссылками на вопросы каталога
func (s *QuizService) CreateQuiz(title string, categoryID uint, startTime, endTime time.Time, questionIDs []uint) (*entity.Quiz, error) {
	title = strings.TrimSpace(title)
	questions, err := s.validateQuizInput(title, categoryID, startTime, endTime, questionIDs)
	if err != nil {
		return nil, err
	}

	quiz := &entity.Quiz{
		Title:      title,
		CategoryID: categoryID,
		StartTime:  startTime,
		EndTime:    endTime,
		Questions:  questions,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	log.Printf("[QuizService] Викторина '%s' создана с ID=%d (%d вопросов)", quiz.Title, quiz.ID, len(questions))
	return quiz, nil
}

// UpdateQuiz обновляет викторину и заменяет набор связанных вопросов
func (s *QuizService) UpdateQuiz(id uint, title string, categoryID uint, startTime, endTime time.Time, questionIDs []uint) (*entity.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	questions, err := s.validateQuizInput(title, categoryID, startTime, endTime, questionIDs)
	if err != nil {
		return nil, err
	}

	quiz.Title = title
	quiz.CategoryID = categoryID
	quiz.StartTime = startTime
	quiz.EndTime = endTime

	if err := s.quizRepo.Update(quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	if err := s.quizRepo.ReplaceQuestions(quiz, questions); err != nil {
		return nil, fmt.Errorf("failed to replace quiz questions: %w", err)
	}

	return quiz, nil
}

// GetQuiz возвращает викторину с вопросами и вариантами ответа
func (s *QuizService) GetQuiz(id uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(id)
}

// ListQuizzes возвращает все викторины
func (s *QuizService) ListQuizzes() ([]entity.Quiz, error) {
	return s.quizRepo.List()
}

// DeleteQuiz удаляет викторину
func (s *QuizService) DeleteQuiz(id uint) error {
	return s.quizRepo.Delete(id)
}

// AssignQuiz назначает викторину пользователю.
// Повторное назначение той же пары (викторина, пользователь) — конфликт.
func (s *QuizService) AssignQuiz(quizID, userID uint) (*entity.QuizAssignment, error) {
	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	assignment := &entity.QuizAssignment{
		QuizID:    quizID,
		UserID:    userID,
		Completed: false,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("викторина %d уже назначена пользователю %d: %w", quizID, userID, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	log.Printf("[QuizService] Викторина ID=%d назначена пользователю ID=%d (assignment ID=%d)",
		quizID, userID, assignment.ID)

	// Уведомление по email — best-effort: ошибка отправки не отменяет назначение
	if user.Email != "" && s.emailService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.emailService.SendAssignmentNotice(ctx, user.Email, quiz.Title, quiz.StartTime, quiz.EndTime); err != nil {
			log.Printf("[QuizService] Не удалось отправить уведомление о назначении пользователю ID=%d: %v", userID, err)
		}
	}

	return assignment, nil
}

// UnassignQuiz снимает назначение викторины с пользователя.
// Завершенность назначения намеренно не проверяется: результат живет независимо.
func (s *QuizService) UnassignQuiz(quizID, userID uint) error {
	return s.assignmentRepo.Delete(quizID, userID)
}

// ListAllAssigned возвращает журнал всех назначений с производными статусами
func (s *QuizService) ListAllAssigned() ([]AssignedQuizInfo, error) {
	assignments, err := s.assignmentRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	resultKeys, err := s.resultKeySet()
	if err != nil {
		return nil, err
	}

	return buildAssignedRows(assignments, resultKeys, time.Now()), nil
}

// ListAssignedForUser возвращает назначения одного пользователя с производными статусами
func (s *QuizService) ListAssignedForUser(userID uint) ([]AssignedQuizInfo, error) {
	assignments, err := s.assignmentRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for user %d: %w", userID, err)
	}

	results, err := s.resultRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for user %d: %w", userID, err)
	}
	resultKeys := make(map[resultKey]bool, len(results))
	for _, r := range results {
		resultKeys[resultKey{quizID: r.QuizID, userID: r.UserID}] = true
	}

	return buildAssignedRows(assignments, resultKeys, time.Now()), nil
}

// validateQuizInput проверяет инварианты викторины и возвращает загруженные вопросы
func (s *QuizService) validateQuizInput(title string, categoryID uint, startTime, endTime time.Time, questionIDs []uint) ([]entity.Question, error) {
	if title == "" {
		return nil, fmt.Errorf("название викторины обязательно: %w", apperrors.ErrValidation)
	}
	if !startTime.Before(endTime) {
		return nil, fmt.Errorf("время начала должно быть раньше времени окончания: %w", apperrors.ErrValidation)
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("категория %d не существует: %w", categoryID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	if len(questionIDs) == 0 {
		return nil, fmt.Errorf("викторина должна содержать хотя бы один вопрос: %w", apperrors.ErrValidation)
	}
	questions, err := s.questionRepo.GetByIDs(questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) != len(uniqueIDs(questionIDs)) {
		return nil, fmt.Errorf("часть вопросов не найдена: %w", apperrors.ErrValidation)
	}

	return questions, nil
}

// resultKey идентифицирует результат по паре (викторина, пользователь)
type resultKey struct {
	quizID uint
	userID uint
}

// resultKeySet загружает пары (quiz_id, user_id) всех результатов одним запросом
func (s *QuizService) resultKeySet() (map[resultKey]bool, error) {
	keys, err := s.resultRepo.ListKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to list result keys: %w", err)
	}
	set := make(map[resultKey]bool, len(keys))
	for _, k := range keys {
		set[resultKey{quizID: k.QuizID, userID: k.UserID}] = true
	}
	return set, nil
}

// buildAssignedRows превращает назначения в строки журнала с производным статусом
func buildAssignedRows(assignments []entity.QuizAssignment, resultKeys map[resultKey]bool, now time.Time) []AssignedQuizInfo {
	rows := make([]AssignedQuizInfo, 0, len(assignments))
	for _, a := range assignments {
		if a.Quiz == nil {
			// Назначение без викторины — нарушение ссылочной целостности, пропускаем
			log.Printf("[QuizService] Назначение ID=%d ссылается на отсутствующую викторину ID=%d", a.ID, a.QuizID)
			continue
		}

		hasResult := resultKeys[resultKey{quizID: a.QuizID, userID: a.UserID}]
		row := AssignedQuizInfo{
			AssignmentID: a.ID,
			QuizID:       a.QuizID,
			QuizTitle:    a.Quiz.Title,
			UserID:       a.UserID,
			StartTime:    a.Quiz.StartTime,
			EndTime:      a.Quiz.EndTime,
			Completed:    a.Completed,
			Status:       entity.DeriveAssignmentStatus(a.Completed, hasResult, now, a.Quiz.StartTime, a.Quiz.EndTime),
		}
		if a.Quiz.Category != nil {
			row.CategoryName = a.Quiz.Category.Name
		}
		if a.User != nil {
			row.Username = a.User.Username
		}
		rows = append(rows, row)
	}
	return rows
}

// uniqueIDs убирает дубликаты из списка ID, сохраняя порядок
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
