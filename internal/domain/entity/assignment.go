package entity

import (
	"time"
)

// Производные статусы назначения.
// Порядок приоритета фиксирован: Completed → Missed → Upcoming → Available,
// выигрывает первое подходящее правило.
const (
	AssignmentStatusCompleted = "Completed"
	AssignmentStatusMissed    = "Missed"
	AssignmentStatusUpcoming  = "Upcoming"
	AssignmentStatusAvailable = "Available"
)

// QuizAssignment связывает викторину с пользователем, которому она назначена
type QuizAssignment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	QuizID    uint `gorm:"not null;uniqueIndex:idx_assignments_quiz_user" json:"quiz_id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_assignments_quiz_user" json:"user_id"`
	Completed bool `gorm:"not null;default:false" json:"completed"`

	Quiz *Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizAssignment) TableName() string {
	return "quiz_assignments"
}

// DeriveAssignmentStatus вычисляет статус назначения как чистую функцию от
// (completed, наличие результата, now, окно викторины).
func DeriveAssignmentStatus(completed, hasResult bool, now, start, end time.Time) string {
	switch {
	case completed && hasResult:
		return AssignmentStatusCompleted
	case end.Before(now):
		return AssignmentStatusMissed
	case start.After(now):
		return AssignmentStatusUpcoming
	default:
		return AssignmentStatusAvailable
	}
}
