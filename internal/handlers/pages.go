package handlers

import (
	"net/http"

	"eduprep/internal/middleware"
	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	catalog  *services.CatalogService
	attempts *services.AttemptService
}

func NewPageHandler(catalog *services.CatalogService, attempts *services.AttemptService) *PageHandler {
	return &PageHandler{catalog: catalog, attempts: attempts}
}

func (h *PageHandler) Index(c *gin.Context) {
	quizzes, err := h.catalog.ListQuizzes()
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData(c, gin.H{"Quizzes": quizzes}))
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	ident, _ := middleware.Identity(c)

	quizzes, err := h.catalog.ListQuizzes()
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	attempts, err := h.attempts.ListByUser(ident.UserID)
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", pageData(c, gin.H{
		"Quizzes":  quizzes,
		"Attempts": attempts,
	}))
}
