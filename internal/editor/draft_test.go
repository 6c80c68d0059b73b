package editor

import (
	"reflect"
	"sort"
	"testing"

	"github.com/senior-cherry/quiz-builder/internal/models"
)

func checkboxQuestion(options []string, correct []string) DraftQuestion {
	return DraftQuestion{
		Text:           "pick some",
		Type:           models.QuestionTypeCheckbox,
		Options:        options,
		CorrectOptions: correct,
	}
}

func TestNewDraftStartsWithOneBooleanQuestion(t *testing.T) {
	d := NewDraft()

	if d.Title != "" {
		t.Errorf("expected empty title, got %q", d.Title)
	}
	if len(d.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(d.Questions))
	}
	q := d.Questions[0]
	if q.Type != models.QuestionTypeBoolean {
		t.Errorf("expected BOOLEAN, got %s", q.Type)
	}
	if q.CorrectAnswer != "true" {
		t.Errorf("expected default answer true, got %q", q.CorrectAnswer)
	}
	if q.Text != "" {
		t.Errorf("expected empty text, got %q", q.Text)
	}
}

func TestAddQuestionAppendsAtEnd(t *testing.T) {
	d := NewDraft()
	d = SetQuestionText(d, 0, "first")
	d = AddQuestion(d)

	if len(d.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(d.Questions))
	}
	if d.Questions[0].Text != "first" {
		t.Errorf("existing question moved: %q", d.Questions[0].Text)
	}
	if d.Questions[1].Type != models.QuestionTypeBoolean || d.Questions[1].CorrectAnswer != "true" {
		t.Errorf("new question has wrong defaults: %+v", d.Questions[1])
	}
}

func TestRemoveQuestionpreservesOrder(t *testing.T) {
	d := Draft{Questions: []DraftQuestion{
		{Text: "a", Type: models.QuestionTypeBoolean},
		{Text: "b", Type: models.QuestionTypeBoolean},
		{Text: "c", Type: models.QuestionTypeBoolean},
	}}

	d = RemoveQuestion(d, 1)

	got := []string{d.Questions[0].Text, d.Questions[1].Text}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", got)
	}
}

func TestChangeTypeResetsToNewDefaults(t *testing.T) {
	// Prior field values must never leak through a type switch.
	dirty := DraftQuestion{
		Text:           "keep me",
		Type:           models.QuestionTypeCheckbox,
		CorrectAnswer:  "stale",
		Options:        []string{"x", "y", "z"},
		CorrectOptions: []string{"0", "2"},
	}

	tests := []struct {
		name    string
		newType string
		want    DraftQuestion
	}{
		{
			name:    "to boolean",
			newType: models.QuestionTypeBoolean,
			want: DraftQuestion{
				Text:          "keep me",
				Type:          models.QuestionTypeBoolean,
				CorrectAnswer: "true",
			},
		},
		{
			name:    "to input",
			newType: models.QuestionTypeInput,
			want: DraftQuestion{
				Text: "keep me",
				Type: models.QuestionTypeInput,
			},
		},
		{
			name:    "to checkbox",
			newType: models.QuestionTypeCheckbox,
			want: DraftQuestion{
				Text:           "keep me",
				Type:           models.QuestionTypeCheckbox,
				Options:        []string{"", ""},
				CorrectOptions: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Questions: []DraftQuestion{dirty}}
			d = ChangeType(d, 0, tt.newType)
			if !reflect.DeepEqual(d.Questions[0], tt.want) {
				t.Errorf("got %+v, want %+v", d.Questions[0], tt.want)
			}
		})
	}
}

func TestChangeTypeUnknownTypeIsNoop(t *testing.T) {
	d := NewDraft()
	before := d.Questions[0]
	d = ChangeType(d, 0, "MATCHING")
	if !reflect.DeepEqual(d.Questions[0], before) {
		t.Errorf("unknown type changed question: %+v", d.Questions[0])
	}
}

func TestAddOptionLeavesCorrectOptionsAlone(t *testing.T) {
	d := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b"}, []string{"1"})}}
	d = AddOption(d, 0)

	q := d.Questions[0]
	if !reflect.DeepEqual(q.Options, []string{"a", "b", ""}) {
		t.Errorf("expected appended empty option, got %v", q.Options)
	}
	if !reflect.DeepEqual(q.CorrectOptions, []string{"1"}) {
		t.Errorf("correctOptions changed: %v", q.CorrectOptions)
	}
}

func TestRemoveOptionReindexesCorrectOptions(t *testing.T) {
	tests := []struct {
		name        string
		options     []string
		correct     []string
		remove      int
		wantOptions []string
		wantCorrect []string
	}{
		{
			name:        "drop removed entry and shift the higher one",
			options:     []string{"A", "B", "C", "D"},
			correct:     []string{"1", "3"},
			remove:      1,
			wantOptions: []string{"A", "C", "D"},
			wantCorrect: []string{"2"},
		},
		{
			name:        "entries below removed index are unchanged",
			options:     []string{"A", "B", "C"},
			correct:     []string{"0", "2"},
			remove:      2,
			wantOptions: []string{"A", "B"},
			wantCorrect: []string{"0"},
		},
		{
			name:        "removing the only correct option empties the set",
			options:     []string{"A", "B"},
			correct:     []string{"0"},
			remove:      0,
			wantOptions: []string{"B"},
			wantCorrect: []string{},
		},
		{
			name:        "all higher entries shift down",
			options:     []string{"A", "B", "C", "D"},
			correct:     []string{"1", "2", "3"},
			remove:      0,
			wantOptions: []string{"B", "C", "D"},
			wantCorrect: []string{"0", "1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Questions: []DraftQuestion{checkboxQuestion(tt.options, tt.correct)}}
			d = RemoveOption(d, 0, tt.remove)

			q := d.Questions[0]
			if !reflect.DeepEqual(q.Options, tt.wantOptions) {
				t.Errorf("options: got %v, want %v", q.Options, tt.wantOptions)
			}
			if !reflect.DeepEqual(q.CorrectOptions, tt.wantCorrect) {
				t.Errorf("correctOptions: got %v, want %v", q.CorrectOptions, tt.wantCorrect)
			}
		})
	}
}

func TestToggleCorrectOptionTwiceRestoresSet(t *testing.T) {
	d := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b", "c"}, []string{"2", "0"})}}

	d = ToggleCorrectOption(d, 0, 1)
	d = ToggleCorrectOption(d, 0, 1)

	got := append([]string{}, d.Questions[0].CorrectOptions...)
	want := []string{"0", "2"}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected set %v, got %v", want, got)
	}
}

func TestToggleCorrectOptionAddsAndRemoves(t *testing.T) {
	d := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b"}, nil)}}

	d = ToggleCorrectOption(d, 0, 1)
	if !IsCorrectOption(d.Questions[0], 1) {
		t.Fatal("expected option 1 marked correct after first toggle")
	}

	d = ToggleCorrectOption(d, 0, 1)
	if IsCorrectOption(d.Questions[0], 1) {
		t.Fatal("expected option 1 unmarked after second toggle")
	}
}

func TestOutOfRangeIndicesAreNoops(t *testing.T) {
	d := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b"}, []string{"0"})}}
	before := d

	d = RemoveQuestion(d, 5)
	d = SetQuestionText(d, -1, "x")
	d = AddOption(d, 2)
	d = SetOption(d, 0, 9, "x")
	d = RemoveOption(d, 0, 9)
	d = ToggleCorrectOption(d, 0, 9)

	if !reflect.DeepEqual(d, before) {
		t.Errorf("out-of-range operation changed the draft: %+v", d)
	}
}

func TestOperationsDoNotMutateInput(t *testing.T) {
	original := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b", "c"}, []string{"1"})}}
	snapshot := Draft{Questions: []DraftQuestion{checkboxQuestion([]string{"a", "b", "c"}, []string{"1"})}}

	_ = RemoveOption(original, 0, 0)
	_ = ToggleCorrectOption(original, 0, 2)
	_ = SetOption(original, 0, 1, "changed")
	_ = ChangeType(original, 0, models.QuestionTypeBoolean)

	if !reflect.DeepEqual(original, snapshot) {
		t.Errorf("input draft was mutated: %+v", original)
	}
}
