// Package editor holds the in-memory draft of a quiz being authored. Every
// operation takes a Draft and returns the new Draft; callers replace their
// copy wholesale, so no partially mutated state is ever observable.
package editor

import (
	"strconv"

	"github.com/senior-cherry/quiz-builder/internal/models"
)

type DraftQuestion struct {
	Text           string
	Type           string
	CorrectAnswer  string
	Options        []string
	CorrectOptions []string
}

type Draft struct {
	Title     string
	Questions []DraftQuestion
}

// defaultQuestion is the shape a freshly added question starts in.
func defaultQuestion() DraftQuestion {
	return DraftQuestion{
		Type:          models.QuestionTypeBoolean,
		CorrectAnswer: "true",
	}
}

// NewDraft returns an empty-titled draft with one default question, the
// initial state of the authoring form.
func NewDraft() Draft {
	return Draft{Questions: []DraftQuestion{defaultQuestion()}}
}

func SetTitle(d Draft, title string) Draft {
	d.Title = title
	return d
}

// AddQuestion appends a default question at the end.
func AddQuestion(d Draft) Draft {
	d.Questions = append(append([]DraftQuestion{}, d.Questions...), defaultQuestion())
	return d
}

// RemoveQuestion deletes the question at index i; the rest keep their
// relative order.
func RemoveQuestion(d Draft, i int) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	questions := make([]DraftQuestion, 0, len(d.Questions)-1)
	questions = append(questions, d.Questions[:i]...)
	questions = append(questions, d.Questions[i+1:]...)
	d.Questions = questions
	return d
}

func SetQuestionText(d Draft, i int, text string) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	d.Questions[i].Text = text
	return d
}

func SetCorrectAnswer(d Draft, i int, answer string) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	d.Questions[i].CorrectAnswer = answer
	return d
}

// ChangeType switches a question to a new type and resets the answer fields
// to that type's defaults. A question must never keep stale fields from its
// previous type.
func ChangeType(d Draft, i int, newType string) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	q := &d.Questions[i]
	switch newType {
	case models.QuestionTypeBoolean:
		q.Type = newType
		q.CorrectAnswer = "true"
		q.Options = nil
		q.CorrectOptions = nil
	case models.QuestionTypeInput:
		q.Type = newType
		q.CorrectAnswer = ""
		q.Options = nil
		q.CorrectOptions = nil
	case models.QuestionTypeCheckbox:
		q.Type = newType
		q.CorrectAnswer = ""
		q.Options = []string{"", ""}
		q.CorrectOptions = []string{}
	}
	return d
}

// AddOption appends one empty option to a CHECKBOX question. CorrectOptions
// is left alone.
func AddOption(d Draft, i int) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	q := &d.Questions[i]
	q.Options = append(append([]string{}, q.Options...), "")
	return d
}

func SetOption(d Draft, i, opt int, text string) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	q := &d.Questions[i]
	if opt < 0 || opt >= len(q.Options) {
		return d
	}
	q.Options = append([]string{}, q.Options...)
	q.Options[opt] = text
	return d
}

// RemoveOption deletes the option at index opt and re-indexes CorrectOptions
// so every remaining entry still points at the option it marked: the entry
// for the removed index is dropped, entries above it shift down by one,
// entries below it are unchanged.
func RemoveOption(d Draft, i, opt int) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	q := &d.Questions[i]
	if opt < 0 || opt >= len(q.Options) {
		return d
	}

	options := make([]string, 0, len(q.Options)-1)
	options = append(options, q.Options[:opt]...)
	options = append(options, q.Options[opt+1:]...)
	q.Options = options

	correct := make([]string, 0, len(q.CorrectOptions))
	for _, entry := range q.CorrectOptions {
		idx, err := strconv.Atoi(entry)
		if err != nil || idx == opt {
			continue
		}
		if idx > opt {
			correct = append(correct, strconv.Itoa(idx-1))
		} else {
			correct = append(correct, entry)
		}
	}
	q.CorrectOptions = correct
	return d
}

// ToggleCorrectOption adds the option index to CorrectOptions if absent and
// removes it if present. CorrectOptions is a set; order carries no meaning.
func ToggleCorrectOption(d Draft, i, opt int) Draft {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d.Questions = cloneQuestions(d.Questions)
	q := &d.Questions[i]
	if opt < 0 || opt >= len(q.Options) {
		return d
	}

	entry := strconv.Itoa(opt)
	for j, existing := range q.CorrectOptions {
		if existing == entry {
			correct := make([]string, 0, len(q.CorrectOptions)-1)
			correct = append(correct, q.CorrectOptions[:j]...)
			correct = append(correct, q.CorrectOptions[j+1:]...)
			q.CorrectOptions = correct
			return d
		}
	}
	q.CorrectOptions = append(append([]string{}, q.CorrectOptions...), entry)
	return d
}

// IsCorrectOption reports whether option index opt is marked correct.
func IsCorrectOption(q DraftQuestion, opt int) bool {
	entry := strconv.Itoa(opt)
	for _, existing := range q.CorrectOptions {
		if existing == entry {
			return true
		}
	}
	return false
}

func cloneQuestions(questions []DraftQuestion) []DraftQuestion {
	cloned := make([]DraftQuestion, len(questions))
	copy(cloned, questions)
	return cloned
}
