package editor

import (
	"testing"

	"github.com/senior-cherry/quiz-builder/internal/models"
)

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	d := Draft{
		Title: "Geography",
		Questions: []DraftQuestion{
			{Text: "Is the sky blue?", Type: models.QuestionTypeBoolean, CorrectAnswer: "true"},
			{Text: "Capital of France?", Type: models.QuestionTypeInput, CorrectAnswer: "Paris"},
			{
				Text:           "Which are primary colors?",
				Type:           models.QuestionTypeCheckbox,
				Options:        []string{"red", "green", "blue"},
				CorrectOptions: []string{"0", "2"},
			},
		},
	}

	if err := Validate(d); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

func TestValidateFailFastOrder(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  string
	}{
		{
			name: "missing title wins over question failures",
			draft: Draft{
				Title: "",
				Questions: []DraftQuestion{
					{Text: "Q1", Type: models.QuestionTypeBoolean, CorrectAnswer: "true"},
				},
			},
			want: "Please enter a quiz title",
		},
		{
			name: "whitespace title is still missing",
			draft: Draft{
				Title: "   ",
				Questions: []DraftQuestion{
					{Text: "Q1", Type: models.QuestionTypeBoolean, CorrectAnswer: "true"},
				},
			},
			want: "Please enter a quiz title",
		},
		{
			name: "question text checked before its answer",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{Text: " ", Type: models.QuestionTypeBoolean},
				},
			},
			want: "Please enter text for question 1",
		},
		{
			name: "boolean needs an answer",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{Text: "Q1", Type: models.QuestionTypeBoolean},
				},
			},
			want: "Please select a correct answer for question 1",
		},
		{
			name: "input answer must be non-blank",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{Text: "Q1", Type: models.QuestionTypeInput, CorrectAnswer: "  "},
				},
			},
			want: "Please enter a correct answer for question 1",
		},
		{
			name: "checkbox option count checked before correct selection",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{
						Text:           "Q1",
						Type:           models.QuestionTypeCheckbox,
						Options:        []string{"a"},
						CorrectOptions: []string{},
					},
				},
			},
			want: "Question 1 needs at least 2 options",
		},
		{
			name: "checkbox needs a correct selection",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{
						Text:           "Q1",
						Type:           models.QuestionTypeCheckbox,
						Options:        []string{"a", "b"},
						CorrectOptions: []string{},
					},
				},
			},
			want: "Please select at least one correct option for question 1",
		},
		{
			name: "first failing question wins",
			draft: Draft{
				Title: "T",
				Questions: []DraftQuestion{
					{Text: "Q1", Type: models.QuestionTypeBoolean, CorrectAnswer: "false"},
					{Text: "", Type: models.QuestionTypeInput},
					{Text: "", Type: models.QuestionTypeCheckbox},
				},
			},
			want: "Please enter text for question 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.draft)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
