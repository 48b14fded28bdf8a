// Package config provides configuration for the BriefBeer core with support
// for environment variables and .env files.
//
// The core is a library embedded in a host process, so it never touches the
// process flag set; precedence is environment variables, then a .env file,
// then defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the catalog core configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Data    DataConfig
	Catalog CatalogConfig
	Lookup  LookupConfig
	Seed    SeedConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds on-device storage configuration.
type DataConfig struct {
	// BasePath is the directory holding the record store and search index.
	BasePath string
}

// CatalogConfig holds remote catalog API configuration.
type CatalogConfig struct {
	BaseURL        string
	PageSize       int
	RequestTimeout time.Duration
}

// LookupConfig holds product-lookup (barcode) API configuration.
type LookupConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// SeedConfig holds bundled seed dataset configuration.
type SeedConfig struct {
	// Path overrides the embedded dataset. Empty means use the bundled one.
	Path string
}

// Load loads configuration with precedence:
// 1. Environment variables (highest priority).
// 2. .env file.
// 3. Default values (lowest priority).
func Load() (*Config, error) {
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(getEnvValue("BRIEFBEER_ENV_FILE", ".env"))

	cfg := &Config{
		App: AppConfig{
			Environment: getEnvValue("BRIEFBEER_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getEnvValue("BRIEFBEER_LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath: getEnvValue("BRIEFBEER_DATA_PATH", ""),
		},
		Catalog: CatalogConfig{
			BaseURL:  getEnvValue("BRIEFBEER_CATALOG_URL", "https://api.openbrewerydb.org/v1"),
			PageSize: getIntEnvValue("BRIEFBEER_CATALOG_PAGE_SIZE", 50),
		},
		Lookup: LookupConfig{
			BaseURL: getEnvValue("BRIEFBEER_LOOKUP_URL", "https://world.openfoodfacts.org"),
		},
		Seed: SeedConfig{
			Path: getEnvValue("BRIEFBEER_SEED_PATH", ""),
		},
	}

	// Parse request timeouts.
	catalogTimeoutStr := getEnvValue("BRIEFBEER_CATALOG_TIMEOUT", "30s")
	catalogTimeout, err := time.ParseDuration(catalogTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog timeout %q: %w", catalogTimeoutStr, err)
	}
	cfg.Catalog.RequestTimeout = catalogTimeout

	lookupTimeoutStr := getEnvValue("BRIEFBEER_LOOKUP_TIMEOUT", "15s")
	lookupTimeout, err := time.ParseDuration(lookupTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup timeout %q: %w", lookupTimeoutStr, err)
	}
	cfg.Lookup.RequestTimeout = lookupTimeout

	// Expand and validate the data path.
	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("BRIEFBEER_ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.BasePath == "" {
		return errors.New("data base path cannot be empty after expansion")
	}

	if c.Catalog.BaseURL == "" {
		return errors.New("catalog base URL cannot be empty")
	}

	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("invalid catalog page size: %d", c.Catalog.PageSize)
	}

	return nil
}

// expandDataPath expands ~ and makes the path absolute.
// Defaults to ~/BriefBeer/data if not specified.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "BriefBeer", "data")

	expanded, err := expandPath(c.Data.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Data.BasePath = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getEnvValue returns the first non-empty value from env var or default.
func getEnvValue(envKey, defaultValue string) string {
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntEnvValue returns an int from env var or default.
func getIntEnvValue(envKey string, defaultValue int) int {
	strValue := getEnvValue(envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
