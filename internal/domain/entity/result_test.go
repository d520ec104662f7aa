package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizResult_ScorePercent(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		total  int
		expect float64
	}{
		{"полный балл", 5, 5, 100},
		{"частичный балл", 3, 5, 60},
		{"ноль", 0, 5, 0},
		{"деление на ноль не падает", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &QuizResult{Score: tt.score, TotalQuestions: tt.total}
			assert.InDelta(t, tt.expect, r.ScorePercent(), 0.001)
		})
	}
}
