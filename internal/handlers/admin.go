package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalog *services.CatalogService
}

func NewAdminHandler(catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

func (h *AdminHandler) Show(c *gin.Context) {
	subjects, err := h.catalog.ListSubjects()
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	quizzes, err := h.catalog.ListQuizzes()
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	questions, err := h.catalog.ListAllQuestions()
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "admin.html", pageData(c, gin.H{
		"Subjects":  subjects,
		"Quizzes":   quizzes,
		"Questions": questions,
	}))
}

// Action dispatches the admin console form posts on their action field and
// always redirects back to the console with a notice.
func (h *AdminHandler) Action(c *gin.Context) {
	switch c.PostForm("action") {
	case "create_subject":
		_, err := h.catalog.CreateSubject(c.PostForm("name"), c.PostForm("grade"), c.PostForm("term"))
		flashResult(c, err, "Subject added.")

	case "create_quiz":
		_, err := h.catalog.CreateQuiz(c.PostForm("title"), parseOptionalID(c.PostForm("subject_id")))
		flashResult(c, err, "Quiz created.")

	case "add_question":
		quizID, _ := strconv.ParseUint(c.PostForm("quiz_id"), 10, 64)
		_, err := h.catalog.CreateQuestion(
			uint(quizID),
			c.PostForm("question"),
			c.PostForm("a"),
			c.PostForm("b"),
			c.PostForm("c"),
			c.PostForm("d"),
			c.PostForm("correct"),
		)
		flashResult(c, err, "Question added.")

	case "delete_question":
		questionID, _ := strconv.ParseUint(c.PostForm("question_id"), 10, 64)
		flashResult(c, h.catalog.DeleteQuestion(uint(questionID)), "Question deleted.")

	default:
		setFlash(c, "Unknown action.")
	}

	c.Redirect(http.StatusFound, "/admin")
}

func flashResult(c *gin.Context, err error, success string) {
	switch {
	case err == nil:
		setFlash(c, success)
	case isValidationError(err):
		setFlash(c, err.Error())
	default:
		setFlash(c, "Something went wrong.")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrNameRequired) ||
		errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrQuestionRequired) ||
		errors.Is(err, services.ErrInvalidCorrectOption)
}

// parseOptionalID turns a form value into a nullable id. Blank or unparsable
// input stores NULL rather than failing the request.
func parseOptionalID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	val := uint(id)
	return &val
}
