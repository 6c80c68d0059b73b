package models

import (
	"time"

	"github.com/lib/pq"
)

// Question types. The type tag decides which answer fields are meaningful:
// BOOLEAN and INPUT carry CorrectAnswer, CHECKBOX carries Options plus
// CorrectOptions (text-encoded indices into Options).
const (
	QuestionTypeBoolean  = "BOOLEAN"
	QuestionTypeInput    = "INPUT"
	QuestionTypeCheckbox = "CHECKBOX"
)

type Question struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	QuizID         uint           `gorm:"not null;index" json:"quizId"`
	Text           string         `gorm:"type:text;not null" json:"text"`
	Type           string         `gorm:"size:16;not null" json:"type"`
	OrderNum       int            `gorm:"not null" json:"-"`
	CorrectAnswer  *string        `gorm:"size:500" json:"correctAnswer"`
	Options        pq.StringArray `gorm:"type:text[]" json:"options"`
	CorrectOptions pq.StringArray `gorm:"type:text[]" json:"correctOptions"`
	CreatedAt      time.Time      `json:"createdAt"`
}
