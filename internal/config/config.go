package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable at composition time
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	AppMode      string
	Port         string
	StoreBackend string
	Database     DatabaseConfig
	JWT          JWTConfig
}

// DatabaseConfig holds database configuration (mysql backend only)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds the token subsystem configuration
type JWTConfig struct {
	Secret        string
	Header        string
	TokenLifetime time.Duration
	RefreshGrace  time.Duration
	LoginPath     string
	RefreshPath   string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional; production supplies real environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	backend := strings.TrimSpace(getEnv("STORE_BACKEND", StoreMemory))
	if backend != StoreMemory && backend != StoreMySQL {
		return nil, fmt.Errorf("invalid STORE_BACKEND: '%s' (must be 'memory' or 'mysql')", backend)
	}

	config := &Config{
		AppMode:      appMode,
		Port:         getEnv("PORT", "3000"),
		StoreBackend: backend,
		Database:     loadDatabaseConfig(),
		JWT:          loadJWTConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded [MODE: %s, STORE: %s]", appMode, backend)
	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		User:     getEnv("DB_USER", "root"),
		Password: getEnv("DB_PASS", ""),
		DBName:   getEnv("DB_NAME", "taskeasy"),
	}
}

func loadJWTConfig() JWTConfig {
	lifetimeHours, _ := strconv.Atoi(getEnv("TOKEN_LIFETIME_HOURS", "5"))
	graceMinutes, _ := strconv.Atoi(getEnv("REFRESH_GRACE_MINUTES", "30"))

	return JWTConfig{
		Secret:        getEnv("JWT_SECRET", "default_secret"),
		Header:        getEnv("AUTH_HEADER", "Authorization"),
		TokenLifetime: time.Duration(lifetimeHours) * time.Hour,
		RefreshGrace:  time.Duration(graceMinutes) * time.Minute,
		LoginPath:     getEnv("LOGIN_PATH", "/authenticate"),
		RefreshPath:   getEnv("REFRESH_PATH", "/refresh"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:4200"
	}
	return origins
}
