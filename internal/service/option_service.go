package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// OptionService предоставляет методы для работы с отдельными вариантами ответа
type OptionService struct {
	optionRepo   repository.OptionRepository
	questionRepo repository.QuestionRepository
}

// NewOptionService создает новый сервис вариантов ответа
func NewOptionService(optionRepo repository.OptionRepository, questionRepo repository.QuestionRepository) *OptionService {
	return &OptionService{
		optionRepo:   optionRepo,
		questionRepo: questionRepo,
	}
}

// CreateOption создает вариант ответа для существующего вопроса
func (s *OptionService) CreateOption(questionID uint, text string, isCorrect bool) (*entity.Option, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("текст варианта обязателен: %w", apperrors.ErrValidation)
	}

	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("вопрос %d не существует: %w", questionID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to check question: %w", err)
	}

	option := &entity.Option{
		QuestionID: questionID,
		Text:       text,
		IsCorrect:  isCorrect,
	}
	if err := s.optionRepo.Create(option); err != nil {
		return nil, fmt.Errorf("failed to create option: %w", err)
	}
	return option, nil
}

// UpdateOption обновляет текст и признак правильности варианта
func (s *OptionService) UpdateOption(id uint, text string, isCorrect bool) (*entity.Option, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("текст варианта обязателен: %w", apperrors.ErrValidation)
	}

	option, err := s.optionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	option.Text = text
	option.IsCorrect = isCorrect
	if err := s.optionRepo.Update(option); err != nil {
		return nil, fmt.Errorf("failed to update option: %w", err)
	}
	return option, nil
}

// DeleteOption удаляет вариант ответа
func (s *OptionService) DeleteOption(id uint) error {
	return s.optionRepo.Delete(id)
}

// GetOption возвращает вариант ответа по ID
func (s *OptionService) GetOption(id uint) (*entity.Option, error) {
	return s.optionRepo.GetByID(id)
}

// ListOptionsByQuestion возвращает варианты ответа вопроса
func (s *OptionService) ListOptionsByQuestion(questionID uint) ([]entity.Option, error) {
	return s.optionRepo.ListByQuestion(questionID)
}
