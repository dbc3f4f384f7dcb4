package application

import (
	"os"

	sharedlogger "blog-v0/internal/shared/logger"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from a .env file without
// overriding variables that are already set. If envFile is empty, .env in the
// current directory is tried. Returns true if a file was loaded.
func LoadEnvFile(logger sharedlogger.Logger, envFile string) bool {
	// If no file specified, try default .env in current directory
	if envFile == "" {
		envFile = ".env"
	}

	// Check if file exists
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		logger.Debug("No .env file found", "path", envFile)
		return false
	}

	// Load the .env file
	err := godotenv.Load(envFile)
	if err != nil {
		logger.Warn("Failed to load .env file", "path", envFile, "err", err)
		return false
	}

	logger.Debug("Loaded .env file", "path", envFile)
	return true
}

