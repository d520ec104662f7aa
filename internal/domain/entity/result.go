package entity

import (
	"time"
)

// QuizResult представляет неизменяемый результат прохождения викторины.
// Уникальный индекс (quiz_id, user_id) — страховка инварианта
// "не более одного результата на пару (викторина, пользователь)".
type QuizResult struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuizID         uint      `gorm:"not null;uniqueIndex:idx_results_quiz_user" json:"quiz_id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_results_quiz_user" json:"user_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	TakenAt        time.Time `gorm:"not null" json:"taken_at"`

	Quiz *Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizResult) TableName() string {
	return "quiz_results"
}

// ScorePercent возвращает результат в процентах от общего числа вопросов
func (r *QuizResult) ScorePercent() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions) * 100
}
