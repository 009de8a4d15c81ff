package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

func GetEnv(name string) (string, error) {
	value, found := os.LookupEnv(name)
	if !found || value == "" {
		return "", fmt.Errorf("%s environment variable not set", name)
	}

	return value, nil
}

func GetEnvOrDefault(name, defaultValue string) string {
	value, err := GetEnv(name)
	if err != nil {
		return defaultValue
	}

	return value
}

func InitEnvironmentVariables(envDir, goEnv string) error {
	// Platform managed deployments inject variables directly
	if os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	envFile := filepath.Join(envDir, DEV_ENV_FILENAME)
	if goEnv == "production" {
		envFile = filepath.Join(envDir, PROD_ENV_FILENAME)
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		log.Warnf("InitEnvironmentVariables: %s not found, using process environment", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	return nil
}
