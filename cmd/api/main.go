package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"painreliefmap/internal/analysis"
	"painreliefmap/internal/api"
	"painreliefmap/internal/config"
)

// Headless engine API. No database: callers post their own records and get
// effect results back.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8090"
	}

	analyzer := analysis.NewAnalyzer(appConfig.EngineOptions())
	server := api.NewServer(analyzer)
	log.Fatal(server.Start(":" + port))
}
