package main

import (
	"log"
	"net/http"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db, err := config.Open()
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
