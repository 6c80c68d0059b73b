package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/senior-cherry/quiz-builder/internal/client"
	"github.com/senior-cherry/quiz-builder/internal/editor"
	"github.com/senior-cherry/quiz-builder/internal/middleware"
	"github.com/senior-cherry/quiz-builder/internal/models"
	"github.com/senior-cherry/quiz-builder/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	api    *client.Client
	drafts *DraftStore
}

func NewHandler(api *client.Client, drafts *DraftStore) *Handler {
	return &Handler{api: api, drafts: drafts}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *Handler) ListQuizzes(c *gin.Context) {
	summaries, err := h.api.ListQuizzes(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "quizzes.html", gin.H{"Error": "Failed to load quizzes"})
		return
	}

	c.HTML(http.StatusOK, "quizzes.html", gin.H{
		"Quizzes": summaries,
		"Error":   c.Query("error"),
	})
}

func (h *Handler) ShowQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/quizzes?error="+url.QueryEscape("Quiz not found"))
		return
	}

	quiz, err := h.api.GetQuiz(c.Request.Context(), uint(id))
	if err != nil {
		msg := "Failed to fetch quiz"
		if errors.Is(err, client.ErrNotFound) {
			msg = "Quiz not found"
		}
		c.Redirect(http.StatusFound, "/quizzes?error="+url.QueryEscape(msg))
		return
	}

	c.HTML(http.StatusOK, "quiz.html", gin.H{
		"Quiz":      quiz,
		"Questions": questionViews(quiz.Questions),
	})
}

// DeleteQuiz is reached from the list page; the browser asks for confirmation
// before the form submits.
func (h *Handler) DeleteQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/quizzes?error="+url.QueryEscape("Quiz not found"))
		return
	}

	if err := h.api.DeleteQuiz(c.Request.Context(), uint(id)); err != nil {
		msg := "Failed to delete quiz"
		if errors.Is(err, client.ErrNotFound) {
			msg = "Quiz not found"
		}
		c.Redirect(http.StatusFound, "/quizzes?error="+url.QueryEscape(msg))
		return
	}

	c.Redirect(http.StatusFound, "/quizzes")
}

func (h *Handler) ShowCreate(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	draft, ok := h.drafts.Get(sessionID)
	if !ok {
		draft = editor.NewDraft()
		h.drafts.Put(sessionID, draft)
	}

	c.HTML(http.StatusOK, "create.html", gin.H{
		"Title":     draft.Title,
		"Questions": draftQuestionViews(draft),
		"CanRemove": len(draft.Questions) > 1,
		"Error":     c.Query("error"),
	})
}

// HandleCreate services every editor form post. It first folds the posted
// field values into the draft, then applies the one structural action named
// by the clicked button, and finally stores the new draft value.
func (h *Handler) HandleCreate(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	draft, ok := h.drafts.Get(sessionID)
	if !ok {
		draft = editor.NewDraft()
	}

	draft = applyForm(draft, c)

	name, q, opt := parseAction(c.PostForm("action"))
	switch name {
	case "add_question":
		draft = editor.AddQuestion(draft)
	case "remove_question":
		// The form never offers removal of the last question.
		if len(draft.Questions) > 1 {
			draft = editor.RemoveQuestion(draft, q)
		}
	case "change_type":
		draft = editor.ChangeType(draft, q, c.PostForm(fmt.Sprintf("type_%d", q)))
	case "add_option":
		draft = editor.AddOption(draft, q)
	case "remove_option":
		draft = editor.RemoveOption(draft, q, opt)
	case "toggle_option":
		draft = editor.ToggleCorrectOption(draft, q, opt)
	case "submit":
		h.drafts.Put(sessionID, draft)
		h.submitDraft(c, sessionID, draft)
		return
	}

	h.drafts.Put(sessionID, draft)
	c.Redirect(http.StatusFound, "/create")
}

func (h *Handler) submitDraft(c *gin.Context, sessionID string, draft editor.Draft) {
	if err := editor.Validate(draft); err != nil {
		c.Redirect(http.StatusFound, "/create?error="+url.QueryEscape(err.Error()))
		return
	}

	quiz, err := h.api.CreateQuiz(c.Request.Context(), client.CreateQuizRequest{
		Title:     draft.Title,
		Questions: questionInputs(draft),
	})
	if err != nil {
		// The draft stays as submitted; the user corrects and retries.
		c.Redirect(http.StatusFound, "/create?error="+url.QueryEscape(err.Error()))
		return
	}

	h.drafts.Delete(sessionID)
	c.Redirect(http.StatusFound, fmt.Sprintf("/quizzes/%d", quiz.ID))
}

// questionInputs maps a validated draft onto the API payload.
func questionInputs(draft editor.Draft) []services.QuestionInput {
	inputs := make([]services.QuestionInput, 0, len(draft.Questions))
	for _, q := range draft.Questions {
		input := services.QuestionInput{
			Text: q.Text,
			Type: q.Type,
		}
		switch q.Type {
		case models.QuestionTypeBoolean, models.QuestionTypeInput:
			answer := q.CorrectAnswer
			input.CorrectAnswer = &answer
		case models.QuestionTypeCheckbox:
			input.Options = q.Options
			input.CorrectOptions = q.CorrectOptions
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// applyForm folds every posted field value into the draft: the title, each
// question's text, the BOOLEAN/INPUT answers and the CHECKBOX option texts.
// Checkbox correct-markings are not read from the form; they only change
// through the toggle action.
func applyForm(draft editor.Draft, c *gin.Context) editor.Draft {
	if title, ok := c.GetPostForm("title"); ok {
		draft = editor.SetTitle(draft, title)
	}

	for i, q := range draft.Questions {
		if text, ok := c.GetPostForm(fmt.Sprintf("text_%d", i)); ok {
			draft = editor.SetQuestionText(draft, i, text)
		}
		switch q.Type {
		case models.QuestionTypeBoolean, models.QuestionTypeInput:
			if answer, ok := c.GetPostForm(fmt.Sprintf("answer_%d", i)); ok {
				draft = editor.SetCorrectAnswer(draft, i, answer)
			}
		case models.QuestionTypeCheckbox:
			for j := range q.Options {
				if text, ok := c.GetPostForm(fmt.Sprintf("option_%d_%d", i, j)); ok {
					draft = editor.SetOption(draft, i, j, text)
				}
			}
		}
	}
	return draft
}

// parseAction splits a button value like "remove_option:1:2" into its name
// and up to two indices. Missing indices come back as -1.
func parseAction(action string) (string, int, int) {
	parts := strings.Split(action, ":")
	name := parts[0]
	q, opt := -1, -1
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			q = n
		}
	}
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			opt = n
		}
	}
	return name, q, opt
}
