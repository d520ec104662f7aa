package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
)

func TestDashboardSummary_AverageScorePercent(t *testing.T) {
	// Arrange: два результата — 3/5 (60%) и 4/5 (80%), среднее 70.00
	assignmentRepo := new(MockAssignmentRepository)
	resultRepo := new(MockResultRepository)
	svc := NewDashboardService(assignmentRepo, resultRepo, nil)

	results := []entity.QuizResult{
		{ID: 1, QuizID: 1, UserID: 5, Score: 3, TotalQuestions: 5},
		{ID: 2, QuizID: 2, UserID: 5, Score: 4, TotalQuestions: 5},
	}

	assignmentRepo.On("CountByUser", uint(5)).Return(int64(3), nil)
	resultRepo.On("CountByUser", uint(5)).Return(int64(2), nil)
	resultRepo.On("ListByUser", uint(5)).Return(results, nil)
	resultRepo.On("ListRecentByUser", uint(5), 5).Return([]repository.ResultRow{}, nil)
	assignmentRepo.On("ListUpcomingByUser", uint(5), mock.AnythingOfType("time.Time"), 5).
		Return([]entity.QuizAssignment{}, nil)

	// Act
	summary, err := svc.Summary(5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.AssignedCount)
	assert.Equal(t, int64(2), summary.CompletedCount)
	assert.Equal(t, 70.0, summary.AverageScorePercent, "Среднее (60+80)/2 = 70.00")
}

func TestDashboardSummary_NoResults(t *testing.T) {
	// Arrange: у пользователя нет результатов
	assignmentRepo := new(MockAssignmentRepository)
	resultRepo := new(MockResultRepository)
	svc := NewDashboardService(assignmentRepo, resultRepo, nil)

	assignmentRepo.On("CountByUser", uint(5)).Return(int64(1), nil)
	resultRepo.On("CountByUser", uint(5)).Return(int64(0), nil)
	resultRepo.On("ListByUser", uint(5)).Return([]entity.QuizResult{}, nil)
	resultRepo.On("ListRecentByUser", uint(5), 5).Return([]repository.ResultRow{}, nil)
	assignmentRepo.On("ListUpcomingByUser", uint(5), mock.AnythingOfType("time.Time"), 5).
		Return([]entity.QuizAssignment{}, nil)

	// Act
	summary, err := svc.Summary(5)

	// Assert: деление на ноль не происходит
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AverageScorePercent)
	assert.Empty(t, summary.RecentResults)
	assert.Empty(t, summary.UpcomingQuizzes)
}

func TestDashboardSummary_AverageRoundedToTwoDecimals(t *testing.T) {
	// Arrange: 1/3 и 2/3 — среднее 50.00; 2/3 одна — 66.67
	assignmentRepo := new(MockAssignmentRepository)
	resultRepo := new(MockResultRepository)
	svc := NewDashboardService(assignmentRepo, resultRepo, nil)

	results := []entity.QuizResult{
		{ID: 1, QuizID: 1, UserID: 5, Score: 2, TotalQuestions: 3},
	}

	assignmentRepo.On("CountByUser", uint(5)).Return(int64(1), nil)
	resultRepo.On("CountByUser", uint(5)).Return(int64(1), nil)
	resultRepo.On("ListByUser", uint(5)).Return(results, nil)
	resultRepo.On("ListRecentByUser", uint(5), 5).Return([]repository.ResultRow{}, nil)
	assignmentRepo.On("ListUpcomingByUser", uint(5), mock.AnythingOfType("time.Time"), 5).
		Return([]entity.QuizAssignment{}, nil)

	// Act
	summary, err := svc.Summary(5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 66.67, summary.AverageScorePercent, "Процент округляется до двух знаков")
}

func TestDashboardSummary_UpcomingQuizzes(t *testing.T) {
	// Arrange: одно предстоящее назначение с категорией
	assignmentRepo := new(MockAssignmentRepository)
	resultRepo := new(MockResultRepository)
	svc := NewDashboardService(assignmentRepo, resultRepo, nil)

	start := time.Now().Add(2 * time.Hour)
	upcoming := []entity.QuizAssignment{
		{
			ID:     1,
			QuizID: 9,
			UserID: 5,
			Quiz: &entity.Quiz{
				ID:        9,
				Title:     "Будущая викторина",
				StartTime: start,
				EndTime:   start.Add(time.Hour),
				Category:  &entity.Category{ID: 1, Name: "История"},
			},
		},
	}

	assignmentRepo.On("CountByUser", uint(5)).Return(int64(1), nil)
	resultRepo.On("CountByUser", uint(5)).Return(int64(0), nil)
	resultRepo.On("ListByUser", uint(5)).Return([]entity.QuizResult{}, nil)
	resultRepo.On("ListRecentByUser", uint(5), 5).Return([]repository.ResultRow{}, nil)
	assignmentRepo.On("ListUpcomingByUser", uint(5), mock.AnythingOfType("time.Time"), 5).
		Return(upcoming, nil)

	// Act
	summary, err := svc.Summary(5)

	// Assert
	require.NoError(t, err)
	require.Len(t, summary.UpcomingQuizzes, 1)
	assert.Equal(t, "Будущая викторина", summary.UpcomingQuizzes[0].QuizTitle)
	assert.Equal(t, "История", summary.UpcomingQuizzes[0].CategoryName)
}
