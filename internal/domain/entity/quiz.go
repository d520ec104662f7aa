package entity

import (
	"time"
)

// Quiz представляет викторину с окном прохождения
type Quiz struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	StartTime  time.Time `gorm:"not null;index" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`

	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Questions []Question `gorm:"many2many:quiz_questions" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// HasValidWindow проверяет инвариант start < end
func (q *Quiz) HasValidWindow() bool {
	return q.StartTime.Before(q.EndTime)
}

// IsUpcoming проверяет, начнется ли викторина в будущем
func (q *Quiz) IsUpcoming(now time.Time) bool {
	return q.StartTime.After(now)
}

// IsFinished проверяет, закончилось ли окно прохождения
func (q *Quiz) IsFinished(now time.Time) bool {
	return q.EndTime.Before(now)
}
