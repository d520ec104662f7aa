package service

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/yourusername/quizhub-api/internal/domain/repository"
)

const (
	dashboardCacheTTL    = 60 * time.Second
	dashboardRecentLimit = 5
)

// DashboardSummary — агрегированная сводка пользователя
type DashboardSummary struct {
	AssignedCount       int64                  `json:"assigned_count"`
	CompletedCount      int64                  `json:"completed_count"`
	AverageScorePercent float64                `json:"average_score_percent"`
	RecentResults       []repository.ResultRow `json:"recent_results"`
	UpcomingQuizzes     []UpcomingQuizInfo     `json:"upcoming_quizzes"`
}

// UpcomingQuizInfo — предстоящая викторина в сводке дашборда
type UpcomingQuizInfo struct {
	QuizID       uint      `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	CategoryName string    `json:"category_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// DashboardService собирает сводку дашборда пользователя
type DashboardService struct {
	assignmentRepo repository.AssignmentRepository
	resultRepo     repository.ResultRepository
	cacheRepo      repository.CacheRepository
}

// NewDashboardService создает новый сервис дашборда.
// cacheRepo может быть nil — тогда сводка собирается на каждый запрос.
func NewDashboardService(
	assignmentRepo repository.AssignmentRepository,
	resultRepo repository.ResultRepository,
	cacheRepo repository.CacheRepository,
) *DashboardService {
	return &DashboardService{
		assignmentRepo: assignmentRepo,
		resultRepo:     resultRepo,
		cacheRepo:      cacheRepo,
	}
}

// Summary возвращает сводку пользователя: счетчики, средний балл,
// последние результаты и ближайшие предстоящие викторины.
func (s *DashboardService) Summary(userID uint) (*DashboardSummary, error) {
	if s.cacheRepo != nil {
		var cached DashboardSummary
		if err := s.cacheRepo.GetJSON(dashboardSummaryKey(userID), &cached); err == nil {
			return &cached, nil
		}
	}

	assignedCount, err := s.assignmentRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	completedCount, err := s.resultRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	results, err := s.resultRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	recent, err := s.resultRepo.ListRecentByUser(userID, dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	upcoming, err := s.assignmentRepo.ListUpcomingByUser(userID, time.Now(), dashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming assignments: %w", err)
	}

	summary := &DashboardSummary{
		AssignedCount:  assignedCount,
		CompletedCount: completedCount,
		RecentResults:  recent,
	}

	// Средний процент по всем результатам, округленный до двух знаков
	if len(results) > 0 {
		total := 0.0
		for _, r := range results {
			total += r.ScorePercent()
		}
		summary.AverageScorePercent = math.Round(total/float64(len(results))*100) / 100
	}

	summary.UpcomingQuizzes = make([]UpcomingQuizInfo, 0, len(upcoming))
	for _, a := range upcoming {
		if a.Quiz == nil {
			continue
		}
		info := UpcomingQuizInfo{
			QuizID:    a.QuizID,
			QuizTitle: a.Quiz.Title,
			StartTime: a.Quiz.StartTime,
			EndTime:   a.Quiz.EndTime,
		}
		if a.Quiz.Category != nil {
			info.CategoryName = a.Quiz.Category.Name
		}
		summary.UpcomingQuizzes = append(summary.UpcomingQuizzes, info)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(dashboardSummaryKey(userID), summary, dashboardCacheTTL); err != nil {
			log.Printf("[DashboardService] Не удалось закешировать сводку пользователя ID=%d: %v", userID, err)
		}
	}

	return summary, nil
}

// dashboardSummaryKey — ключ кеша сводки дашборда пользователя
func dashboardSummaryKey(userID uint) string {
	return fmt.Sprintf("dashboard:summary:%d", userID)
}
