package handlers

import (
	"html/template"

	"eduprep/internal/middleware"
	"eduprep/internal/services"
	"eduprep/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all handlers onto a gin engine with the embedded templates
// loaded, so main and the tests mount the exact same surface.
func NewRouter(authService *services.AuthService, catalog *services.CatalogService, attempts *services.AttemptService) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(web.Templates()))

	authHandler := NewAuthHandler(authService)
	pageHandler := NewPageHandler(catalog, attempts)
	quizHandler := NewQuizHandler(catalog, attempts)
	adminHandler := NewAdminHandler(catalog)
	apiHandler := NewAPIHandler(catalog)

	r.Use(middleware.CurrentUser(authService))

	r.GET("/", pageHandler.Index)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/quiz/:id", quizHandler.Show)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/dashboard", pageHandler.Dashboard)
		authed.POST("/quiz/:id", quizHandler.Submit)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", adminHandler.Show)
		admin.POST("", adminHandler.Action)
	}

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	{
		api.GET("/quizzes", apiHandler.ListQuizzes)
	}

	return r
}
