// Package client is the REST client the web frontend uses to reach the quiz
// API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/senior-cherry/quiz-builder/internal/models"
	"github.com/senior-cherry/quiz-builder/internal/services"
)

var ErrNotFound = errors.New("quiz not found")

type CreateQuizRequest struct {
	Title     string                   `json:"title"`
	Questions []services.QuestionInput `json:"questions"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateQuiz(ctx context.Context, req CreateQuizRequest) (*models.Quiz, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quizzes", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp, "failed to create quiz")
	}

	var quiz models.Quiz
	if err := json.NewDecoder(resp.Body).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) ListQuizzes(ctx context.Context) ([]services.QuizSummary, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quizzes", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "failed to fetch quizzes")
	}

	var summaries []services.QuizSummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) GetQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/quizzes/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, "failed to fetch quiz")
	}

	var quiz models.Quiz
	if err := json.NewDecoder(resp.Body).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id uint) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/quizzes/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp, "failed to delete quiz")
	}
	return nil
}

// apiError prefers the server's {error} message over the fallback.
func apiError(resp *http.Response, fallback string) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return errors.New(fallback)
}
