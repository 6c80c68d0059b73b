package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/senior-cherry/quiz-builder/internal/models"
)

// Validate gates submission. It fails fast: the first violated check across
// the whole draft wins, and the message names the offending question by
// 1-based position.
func Validate(d Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("Please enter a quiz title")
	}

	for i, q := range d.Questions {
		n := i + 1
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("Please enter text for question %d", n)
		}

		switch q.Type {
		case models.QuestionTypeBoolean:
			if q.CorrectAnswer == "" {
				return fmt.Errorf("Please select a correct answer for question %d", n)
			}
		case models.QuestionTypeInput:
			if strings.TrimSpace(q.CorrectAnswer) == "" {
				return fmt.Errorf("Please enter a correct answer for question %d", n)
			}
		case models.QuestionTypeCheckbox:
			if len(q.Options) < 2 {
				return fmt.Errorf("Question %d needs at least 2 options", n)
			}
			if len(q.CorrectOptions) == 0 {
				return fmt.Errorf("Please select at least one correct option for question %d", n)
			}
		}
	}

	return nil
}
