package web

import (
	"strconv"

	"github.com/senior-cherry/quiz-builder/internal/editor"
	"github.com/senior-cherry/quiz-builder/internal/models"
)

// OptionView is one CHECKBOX option prepared for rendering.
type OptionView struct {
	Index   int
	Text    string
	Correct bool
}

// QuestionView is a persisted question prepared for the read-only quiz page.
type QuestionView struct {
	Number        int
	Text          string
	Type          string
	CorrectAnswer string
	Options       []OptionView
}

// DraftQuestionView is a draft question prepared for the editor form.
type DraftQuestionView struct {
	Index         int
	Number        int
	Text          string
	Type          string
	CorrectAnswer string
	Options       []OptionView
}

func questionViews(questions []models.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for i, q := range questions {
		view := QuestionView{
			Number: i + 1,
			Text:   q.Text,
			Type:   q.Type,
		}
		if q.CorrectAnswer != nil {
			view.CorrectAnswer = *q.CorrectAnswer
		}
		correct := make(map[int]bool, len(q.CorrectOptions))
		for _, entry := range q.CorrectOptions {
			if idx, err := strconv.Atoi(entry); err == nil {
				correct[idx] = true
			}
		}
		for j, text := range q.Options {
			view.Options = append(view.Options, OptionView{
				Index:   j,
				Text:    text,
				Correct: correct[j],
			})
		}
		views = append(views, view)
	}
	return views
}

func draftQuestionViews(d editor.Draft) []DraftQuestionView {
	views := make([]DraftQuestionView, 0, len(d.Questions))
	for i, q := range d.Questions {
		view := DraftQuestionView{
			Index:         i,
			Number:        i + 1,
			Text:          q.Text,
			Type:          q.Type,
			CorrectAnswer: q.CorrectAnswer,
		}
		for j, text := range q.Options {
			view.Options = append(view.Options, OptionView{
				Index:   j,
				Text:    text,
				Correct: editor.IsCorrectOption(q, j),
			})
		}
		views = append(views, view)
	}
	return views
}
