package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/server"
)

func main() {
	// Load .env when present; real environment variables still win.
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
