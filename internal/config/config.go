// Package config loads runtime configuration: process environment (via
// an optional .env file) and the per-report YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig holds environment-derived settings. Field names mirror the
// environment variable names.
type EnvConfig struct {
	APP_PORT       string
	LOG_FILE_PATH  string
	SCAN_DATA_FILE string
	EXCEL_FILE     string
	REPORT_AUTHOR  string
	REPORT_COMPANY string
}

// DefaultEnvConfig is populated by LoadEnvConfig.
var DefaultEnvConfig EnvConfig

// LoadEnvConfig reads an optional .env file and fills DefaultEnvConfig
// from the environment with sensible fallbacks. A missing .env file is
// not an error.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env file: %w", err)
	}

	DefaultEnvConfig = EnvConfig{
		APP_PORT:       getEnv("APP_PORT", "8082"),
		LOG_FILE_PATH:  getEnv("LOG_FILE_PATH", "scaninsight.log"),
		SCAN_DATA_FILE: getEnv("SCAN_DATA_FILE", "scans.json"),
		EXCEL_FILE:     getEnv("EXCEL_FILE", "scans.xlsx"),
		REPORT_AUTHOR:  getEnv("REPORT_AUTHOR", "scaninsight"),
		REPORT_COMPANY: getEnv("REPORT_COMPANY", ""),
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
