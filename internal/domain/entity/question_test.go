package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_CorrectOptionID(t *testing.T) {
	// Arrange: вопрос с одним правильным вариантом
	question := &Question{
		Text: "Сколько будет 2+2?",
		Options: []Option{
			{ID: 10, Text: "3", IsCorrect: false},
			{ID: 11, Text: "4", IsCorrect: true},
			{ID: 12, Text: "5", IsCorrect: false},
		},
	}

	// Act
	id, ok := question.CorrectOptionID()

	// Assert
	assert.True(t, ok, "Правильный вариант должен быть найден")
	assert.Equal(t, uint(11), id, "Должен вернуться ID правильного варианта")
}

func TestQuestion_CorrectOptionID_NoCorrectOption(t *testing.T) {
	question := &Question{
		Options: []Option{
			{ID: 10, IsCorrect: false},
			{ID: 11, IsCorrect: false},
		},
	}

	_, ok := question.CorrectOptionID()
	assert.False(t, ok, "Без правильного варианта ok должен быть false")
	assert.False(t, question.HasCorrectOption())
}

func TestQuestion_CorrectOptionID_NoOptionsLoaded(t *testing.T) {
	question := &Question{}

	_, ok := question.CorrectOptionID()
	assert.False(t, ok, "Без загруженных вариантов ok должен быть false")
	assert.Equal(t, 0, question.OptionsCount())
}
