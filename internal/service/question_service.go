package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// OptionInput представляет вариант ответа при создании/обновлении вопроса
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateQuestion создает вопрос вместе с вариантами ответа
func (s *QuestionService) CreateQuestion(text string, categoryID uint, options []OptionInput) (*entity.Question, error) {
	text = strings.TrimSpace(text)
	if err := s.validateQuestionInput(text, categoryID, options); err != nil {
		return nil, err
	}

	question := &entity.Question{
		CategoryID: categoryID,
		Text:       text,
		Options:    buildOptions(options),
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Вопрос создан с ID=%d (категория %d, вариантов: %d)",
		question.ID, categoryID, len(options))
	return question, nil
}

// UpdateQuestion обновляет вопрос и заменяет весь набор вариантов.
// Замена деструктивна: старые варианты теряют свои ID (см. DESIGN.md).
func (s *QuestionService) UpdateQuestion(id uint, text string, categoryID uint, options []OptionInput) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if err := s.validateQuestionInput(text, categoryID, options); err != nil {
		return nil, err
	}

	question.Text = text
	question.CategoryID = categoryID
	question.Options = buildOptions(options)

	if err := s.questionRepo.ReplaceWithOptions(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	return question, nil
}

// DeleteQuestion удаляет вопрос.
// Удаление запрещено, пока вопрос связан хотя бы с одной викториной.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}

	links, err := s.questionRepo.CountQuizLinks(id)
	if err != nil {
		return fmt.Errorf("failed to count quiz links: %w", err)
	}
	if links > 0 {
		return fmt.Errorf("вопрос используется %d викторинами и не может быть удален: %w", links, apperrors.ErrConflict)
	}

	return s.questionRepo.Delete(id)
}

// GetQuestion возвращает вопрос с вариантами ответа
func (s *QuestionService) GetQuestion(id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(id)
}

// ListQuestions возвращает все вопросы
func (s *QuestionService) ListQuestions() ([]entity.Question, error) {
	return s.questionRepo.List()
}

// validateQuestionInput проверяет инварианты вопроса:
// непустой текст, существующая категория, минимум 2 варианта, минимум 1 правильный.
func (s *QuestionService) validateQuestionInput(text string, categoryID uint, options []OptionInput) error {
	if text == "" {
		return fmt.Errorf("текст вопроса обязателен: %w", apperrors.ErrValidation)
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("категория %d не существует: %w", categoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to check category: %w", err)
	}

	if len(options) < entity.MinOptionsPerQuestion {
		return fmt.Errorf("вопрос должен иметь минимум %d варианта ответа: %w",
			entity.MinOptionsPerQuestion, apperrors.ErrValidation)
	}

	hasCorrect := false
	for i, opt := range options {
		if strings.TrimSpace(opt.Text) == "" {
			return fmt.Errorf("текст варианта #%d обязателен: %w", i+1, apperrors.ErrValidation)
		}
		if opt.IsCorrect {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		return fmt.Errorf("хотя бы один вариант должен быть правильным: %w", apperrors.ErrValidation)
	}

	return nil
}

// buildOptions преобразует входные варианты в сущности
func buildOptions(options []OptionInput) []entity.Option {
	result := make([]entity.Option, 0, len(options))
	for _, opt := range options {
		result = append(result, entity.Option{
			Text:      strings.TrimSpace(opt.Text),
			IsCorrect: opt.IsCorrect,
		})
	}
	return result
}
