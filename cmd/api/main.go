package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ebsuite/claimsportal/internal/pkg/logger"
	"github.com/ebsuite/claimsportal/internal/server"
)

// @title Claims Portal API
// @version 1.0
// @description Billing portal API for educational service claims
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@claimsportal.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Optional .env file; real deployments set environment variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
