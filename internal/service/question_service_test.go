package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

func TestCreateQuestion_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Name: "Math"}, nil)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)

	options := []OptionInput{
		{Text: "3", IsCorrect: false},
		{Text: "4", IsCorrect: true},
	}

	// Act
	question, err := svc.CreateQuestion("Сколько будет 2+2?", 1, options)

	// Assert
	require.NoError(t, err)
	assert.Len(t, question.Options, 2)
	assert.True(t, question.HasCorrectOption())
	questionRepo.AssertExpectations(t)
}

func TestCreateQuestion_TooFewOptions(t *testing.T) {
	// Arrange: один вариант — меньше минимума
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1}, nil)

	// Act
	_, err := svc.CreateQuestion("Вопрос?", 1, []OptionInput{{Text: "единственный", IsCorrect: true}})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Минимум 2 варианта ответа")
	questionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateQuestion_NoCorrectOption(t *testing.T) {
	// Arrange: ни один вариант не помечен правильным
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1}, nil)

	options := []OptionInput{
		{Text: "3", IsCorrect: false},
		{Text: "5", IsCorrect: false},
	}

	// Act
	_, err := svc.CreateQuestion("Вопрос?", 1, options)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Нужен хотя бы один правильный вариант")
}

func TestCreateQuestion_UnknownCategory(t *testing.T) {
	// Arrange: категория из тела запроса не существует
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	options := []OptionInput{
		{Text: "a", IsCorrect: true},
		{Text: "b", IsCorrect: false},
	}

	// Act
	_, err := svc.CreateQuestion("Вопрос?", 99, options)

	// Assert: несуществующая сущность из тела — ошибка валидации, не 404
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteQuestion_BlockedByQuizLinks(t *testing.T) {
	// Arrange: вопрос связан с викториной
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	questionRepo.On("GetByID", uint(5)).Return(&entity.Question{ID: 5}, nil)
	questionRepo.On("CountQuizLinks", uint(5)).Return(int64(2), nil)

	// Act
	err := svc.DeleteQuestion(5)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Используемый вопрос не должен удаляться")
	questionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestUpdateQuestion_ReplacesOptions(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	svc := NewQuestionService(questionRepo, categoryRepo)

	existing := &entity.Question{ID: 5, CategoryID: 1, Text: "старый текст"}
	questionRepo.On("GetByID", uint(5)).Return(existing, nil)
	categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2}, nil)
	questionRepo.On("ReplaceWithOptions", mock.AnythingOfType("*entity.Question")).Return(nil)

	options := []OptionInput{
		{Text: "да", IsCorrect: true},
		{Text: "нет", IsCorrect: false},
	}

	// Act
	updated, err := svc.UpdateQuestion(5, "новый текст", 2, options)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "новый текст", updated.Text)
	assert.Equal(t, uint(2), updated.CategoryID)
	assert.Len(t, updated.Options, 2)
	questionRepo.AssertExpectations(t)
}
