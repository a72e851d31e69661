package handlers

import (
	"eduprep/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// pageData decorates template data with the current identity and any pending
// flash notice, so every page can render the nav and notices the same way.
func pageData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	if ident, ok := middleware.Identity(c); ok {
		data["User"] = ident
	}
	if msg, ok := takeFlash(c); ok {
		data["Flash"] = msg
	}
	return data
}
