package services

import (
	"errors"
	"fmt"

	"github.com/senior-cherry/quiz-builder/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrValidation   = errors.New("title and at least one question are required")
)

// InvalidQuestionTypeError reports a question whose type tag is not one of
// BOOLEAN, INPUT or CHECKBOX. It aborts the whole create operation.
type InvalidQuestionTypeError struct {
	Type string
}

func (e *InvalidQuestionTypeError) Error() string {
	return fmt.Sprintf("invalid question type: %s", e.Type)
}

type QuestionInput struct {
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	CorrectAnswer  *string  `json:"correctAnswer"`
	Options        []string `json:"options"`
	CorrectOptions []string `json:"correctOptions"`
}

// QuizSummary is the list-view projection: question bodies are not loaded.
type QuizSummary struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
}

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// normalizeQuestion turns a draft question into the persistable shape for its
// declared type: BOOLEAN and INPUT keep the answer and force empty option
// arrays, CHECKBOX keeps the option arrays and drops the answer. Arrays are
// always non-nil so they serialize as [] rather than null.
func normalizeQuestion(input QuestionInput) (models.Question, error) {
	q := models.Question{
		Text: input.Text,
		Type: input.Type,
	}

	switch input.Type {
	case models.QuestionTypeBoolean, models.QuestionTypeInput:
		q.CorrectAnswer = input.CorrectAnswer
		q.Options = pq.StringArray{}
		q.CorrectOptions = pq.StringArray{}
	case models.QuestionTypeCheckbox:
		q.CorrectAnswer = nil
		q.Options = pq.StringArray(input.Options)
		q.CorrectOptions = pq.StringArray(input.CorrectOptions)
		if q.Options == nil {
			q.Options = pq.StringArray{}
		}
		if q.CorrectOptions == nil {
			q.CorrectOptions = pq.StringArray{}
		}
	default:
		return models.Question{}, &InvalidQuestionTypeError{Type: input.Type}
	}

	return q, nil
}

// CreateQuiz persists a quiz and its questions in one transaction. The
// title/questions check runs before anything is written; a normalization
// failure aborts before the transaction starts so no partial quiz survives.
func (s *QuizService) CreateQuiz(title string, questions []QuestionInput) (*models.Quiz, error) {
	if title == "" || len(questions) == 0 {
		return nil, ErrValidation
	}

	normalized := make([]models.Question, 0, len(questions))
	for i, input := range questions {
		q, err := normalizeQuestion(input)
		if err != nil {
			return nil, err
		}
		q.OrderNum = i
		normalized = append(normalized, q)
	}

	quiz := models.Quiz{Title: title}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for i := range normalized {
			normalized[i].QuizID = quiz.ID
			if err := tx.Create(&normalized[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&quiz, quiz.ID)
	return &quiz, nil
}

// ListQuizzes returns all quizzes newest first, summarized with their
// question counts.
func (s *QuizService) ListQuizzes() ([]QuizSummary, error) {
	summaries := []QuizSummary{}
	err := s.db.Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.title, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Group("quizzes.id").
		Order("quizzes.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *QuizService) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// DeleteQuiz removes the quiz and all its questions. A second delete of the
// same id reports ErrQuizNotFound.
func (s *QuizService) DeleteQuiz(quizID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Quiz{}, quizID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrQuizNotFound
		}
		return tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error
	})
}
