package handlers

import "github.com/senior-cherry/quiz-builder/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"Quiz not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Quiz Builder API is running"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Question = models.Question
