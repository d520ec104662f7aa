package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAssignmentStatus(t *testing.T) {
	// Фиксированная точка отсчета, чтобы тест не зависел от часов
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		completed bool
		hasResult bool
		start     time.Time
		end       time.Time
		want      string
	}{
		{
			name:      "завершена с результатом",
			completed: true,
			hasResult: true,
			start:     now.Add(-2 * time.Hour),
			end:       now.Add(-1 * time.Hour),
			want:      AssignmentStatusCompleted,
		},
		{
			name:      "окно закрылось без прохождения",
			completed: false,
			hasResult: false,
			start:     now.Add(-2 * time.Hour),
			end:       now.Add(-1 * time.Hour),
			want:      AssignmentStatusMissed,
		},
		{
			name:      "окно еще не открылось",
			completed: false,
			hasResult: false,
			start:     now.Add(1 * time.Hour),
			end:       now.Add(2 * time.Hour),
			want:      AssignmentStatusUpcoming,
		},
		{
			name:      "окно открыто",
			completed: false,
			hasResult: false,
			start:     now.Add(-1 * time.Hour),
			end:       now.Add(1 * time.Hour),
			want:      AssignmentStatusAvailable,
		},
		{
			name:      "Completed имеет приоритет над Missed",
			completed: true,
			hasResult: true,
			start:     now.Add(-3 * time.Hour),
			end:       now.Add(-2 * time.Hour),
			want:      AssignmentStatusCompleted,
		},
		{
			name:      "флаг без результата не дает Completed",
			completed: true,
			hasResult: false,
			start:     now.Add(-1 * time.Hour),
			end:       now.Add(1 * time.Hour),
			want:      AssignmentStatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAssignmentStatus(tt.completed, tt.hasResult, now, tt.start, tt.end)
			assert.Equal(t, tt.want, got, "Неожиданный статус назначения")
		})
	}
}

func TestQuiz_WindowHelpers(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	quiz := &Quiz{
		StartTime: now.Add(1 * time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}

	assert.True(t, quiz.HasValidWindow(), "Окно start < end должно быть валидным")
	assert.True(t, quiz.IsUpcoming(now), "Викторина должна быть предстоящей")
	assert.False(t, quiz.IsFinished(now), "Викторина не должна быть завершенной")

	invalid := &Quiz{StartTime: now, EndTime: now}
	assert.False(t, invalid.HasValidWindow(), "Окно start == end невалидно")
}
