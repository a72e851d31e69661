package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"eduprep/internal/middleware"
	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	catalog  *services.CatalogService
	attempts *services.AttemptService
}

func NewQuizHandler(catalog *services.CatalogService, attempts *services.AttemptService) *QuizHandler {
	return &QuizHandler{catalog: catalog, attempts: attempts}
}

func (h *QuizHandler) Show(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	quiz, err := h.catalog.GetQuiz(uint(quizID))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.String(http.StatusNotFound, "quiz not found")
			return
		}
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	questions, err := h.catalog.ListQuestions(quiz.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "take_quiz.html", pageData(c, gin.H{
		"Quiz":      quiz,
		"Questions": questions,
	}))
}

func (h *QuizHandler) Submit(c *gin.Context) {
	ident, _ := middleware.Identity(c)

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "quiz not found")
		return
	}

	attempt, err := h.attempts.Submit(ident.UserID, uint(quizID), c.PostForm("student_name"), parseAnswers(c))
	switch {
	case errors.Is(err, services.ErrStudentNameRequired):
		setFlash(c, "Please enter the student name.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/quiz/%d", quizID))
	case errors.Is(err, services.ErrAlreadyAttempted):
		setFlash(c, "You have already attempted this quiz.")
		c.Redirect(http.StatusFound, "/dashboard")
	case errors.Is(err, services.ErrQuizNotFound):
		c.String(http.StatusNotFound, "quiz not found")
	case err != nil:
		setFlash(c, "Could not record the attempt.")
		c.Redirect(http.StatusFound, "/dashboard")
	default:
		setFlash(c, fmt.Sprintf("Quiz finished: score %d/%d", attempt.Score, attempt.Total))
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// parseAnswers collects the q_<questionID> form fields into a map keyed by
// question id. Malformed keys are skipped.
func parseAnswers(c *gin.Context) map[uint]string {
	answers := make(map[uint]string)
	if err := c.Request.ParseForm(); err != nil {
		return answers
	}
	for key, vals := range c.Request.PostForm {
		raw, found := strings.CutPrefix(key, "q_")
		if !found || len(vals) == 0 {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		answers[uint(id)] = vals[0]
	}
	return answers
}
