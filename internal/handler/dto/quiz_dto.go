package dto

import (
	"time"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
)

// TakeOptionResponse — вариант ответа для прохождения викторины.
// Признак правильности намеренно отсутствует.
type TakeOptionResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// TakeQuestionResponse — вопрос для прохождения викторины
type TakeQuestionResponse struct {
	ID      uint                 `json:"id"`
	Text    string               `json:"text"`
	Options []TakeOptionResponse `json:"options"`
}

// TakeQuizResponse — викторина в формате для прохождения
type TakeQuizResponse struct {
	ID        uint                   `json:"id"`
	Title     string                 `json:"title"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
	Questions []TakeQuestionResponse `json:"questions"`
}

// NewTakeQuizResponse строит представление викторины для прохождения,
// скрывая правильные варианты ответа
func NewTakeQuizResponse(quiz *entity.Quiz) *TakeQuizResponse {
	if quiz == nil {
		return nil
	}

	questions := make([]TakeQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make([]TakeOptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, TakeOptionResponse{ID: opt.ID, Text: opt.Text})
		}
		questions = append(questions, TakeQuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: options,
		})
	}

	return &TakeQuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		StartTime: quiz.StartTime,
		EndTime:   quiz.EndTime,
		Questions: questions,
	}
}

// ResultResponse — результат прохождения в формате для клиента
type ResultResponse struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	ScorePercent   float64   `json:"score_percent"`
	TakenAt        time.Time `json:"taken_at"`
}

// NewResultResponse создает DTO результата
func NewResultResponse(result *entity.QuizResult) *ResultResponse {
	if result == nil {
		return nil
	}
	resp := &ResultResponse{
		ID:             result.ID,
		QuizID:         result.QuizID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		ScorePercent:   result.ScorePercent(),
		TakenAt:        result.TakenAt,
	}
	if result.Quiz != nil {
		resp.QuizTitle = result.Quiz.Title
	}
	return resp
}

// NewResultResponseList создает список DTO результатов
func NewResultResponseList(results []entity.QuizResult) []*ResultResponse {
	list := make([]*ResultResponse, 0, len(results))
	for i := range results {
		list = append(list, NewResultResponse(&results[i]))
	}
	return list
}
