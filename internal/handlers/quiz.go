package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/senior-cherry/quiz-builder/internal/models"
	"github.com/senior-cherry/quiz-builder/internal/services"

	"github.com/gin-gonic/gin"
)

// QuizStore is the persistence surface the handlers need. Implemented by
// services.QuizService.
type QuizStore interface {
	CreateQuiz(title string, questions []services.QuestionInput) (*models.Quiz, error)
	ListQuizzes() ([]services.QuizSummary, error)
	GetQuizByID(quizID uint) (*models.Quiz, error)
	DeleteQuiz(quizID uint) error
}

type QuizHandler struct {
	store QuizStore
}

func NewQuizHandler(store QuizStore) *QuizHandler {
	return &QuizHandler{store: store}
}

type CreateQuizRequest struct {
	Title     string                   `json:"title" example:"My Quiz"`
	Questions []services.QuestionInput `json:"questions"`
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with its questions in one atomic operation
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.store.CreateQuiz(req.Title, req.Questions)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Title and at least one question are required"})
			return
		}
		// Unknown question types are only detected here, inside the create
		// path, so they surface as a 500 like any other create failure.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Description  Get all quizzes newest first, summarized as id, title and question count
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} services.QuizSummary
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.store.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Get a quiz with its questions in creation order
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.store.GetQuizByID(uint(quizID))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Delete a quiz and all its questions
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.store.DeleteQuiz(uint(quizID)); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Health godoc
// @Summary      API health check
// @Tags         health
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       / [get]
func (h *QuizHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Quiz Builder API is running"})
}
