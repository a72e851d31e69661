package handlers

import (
	"net/http"

	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	catalog *services.CatalogService
}

func NewAPIHandler(catalog *services.CatalogService) *APIHandler {
	return &APIHandler{catalog: catalog}
}

type QuizSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ListQuizzes returns every quiz as {id, title}, newest first.
func (h *APIHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.catalog.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
		return
	}

	items := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		items = append(items, QuizSummary{ID: quiz.ID, Title: quiz.Title})
	}
	c.JSON(http.StatusOK, items)
}
