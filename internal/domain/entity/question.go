package entity

import (
	"time"
)

// Минимальные требования к набору вариантов ответа
const MinOptionsPerQuestion = 2

// Question представляет вопрос, принадлежащий категории
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Text       string `gorm:"size:500;not null" json:"text"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CorrectOptionID возвращает ID правильного варианта ответа.
// Второе значение false, если правильный вариант не загружен или не задан.
func (q *Question) CorrectOptionID() (uint, bool) {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return opt.ID, true
		}
	}
	return 0, false
}

// HasCorrectOption проверяет, есть ли среди вариантов хотя бы один правильный
func (q *Question) HasCorrectOption() bool {
	_, ok := q.CorrectOptionID()
	return ok
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}
