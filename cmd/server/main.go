package main

import (
	"log"

	"eduprep/internal/config"
	"eduprep/internal/database"
	"eduprep/internal/handlers"
	"eduprep/internal/services"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.SessionSecret)
	catalogService := services.NewCatalogService(db)
	attemptService := services.NewAttemptService(db)

	if err := authService.EnsureDefaultAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	r := handlers.NewRouter(authService, catalogService, attemptService)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
