// Package config loads settings from .env and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Client configures the plantbook terminal client.
type Client struct {
	APIBaseURL   string        `mapstructure:"API_BASE_URL"`
	ImageBaseURL string        `mapstructure:"IMAGE_BASE_URL"`
	StorageDir   string        `mapstructure:"STORAGE_DIR"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	HTTPTimeout  time.Duration `mapstructure:"PLANTBOOK_HTTP_TIMEOUT"`
	Language     string        `mapstructure:"PLANTBOOK_LANGUAGE"`
}

// Server configures the nursery API dev server.
type Server struct {
	Port        string        `mapstructure:"PORT"`
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	DBHost      string        `mapstructure:"DB_HOST"`
	DBPort      string        `mapstructure:"DB_PORT"`
	DBUser      string        `mapstructure:"DB_USER"`
	DBPassword  string        `mapstructure:"DB_PASSWORD"`
	DBName      string        `mapstructure:"DB_NAME"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
	AdminAPIKey string        `mapstructure:"ADMIN_API_KEY"`
	UploadDir   string        `mapstructure:"UPLOAD_DIR"`
	CORSOrigins []string      `mapstructure:"CORS_ORIGINS"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	GinMode     string        `mapstructure:"GIN_MODE"`
	Seed        bool          `mapstructure:"SEED"`

	// Nightly copy of UploadDir; empty BackupDir disables it.
	BackupDir       string        `mapstructure:"BACKUP_DIR"`
	BackupRetention time.Duration `mapstructure:"BACKUP_RETENTION"`
	BackupHour      int           `mapstructure:"BACKUP_HOUR"`
}

var clientDefaults = map[string]any{
	"API_BASE_URL":           "http://localhost:5679/api",
	"IMAGE_BASE_URL":         "http://localhost:5679/uploads/",
	"STORAGE_DIR":            "",
	"LOG_LEVEL":              "warn",
	"PLANTBOOK_HTTP_TIMEOUT": "0s",
	"PLANTBOOK_LANGUAGE":     "english",
}

var serverDefaults = map[string]any{
	"PORT":          "5679",
	"DATABASE_URL":  "",
	"DB_HOST":       "",
	"DB_PORT":       "5432",
	"DB_USER":       "",
	"DB_PASSWORD":   "",
	"DB_NAME":       "",
	"JWT_SECRET":    "",
	"TOKEN_TTL":     "72h",
	"ADMIN_API_KEY": "",
	"UPLOAD_DIR":    "./uploads",
	"CORS_ORIGINS":  "*",
	"LOG_LEVEL":     "info",
	"GIN_MODE":      "release",
	"SEED":          false,

	"BACKUP_DIR":       "",
	"BACKUP_RETENTION": "96h",
	"BACKUP_HOUR":      2,
}

// newViper reads .env files when present, then lets the environment win.
func newViper(defaults map[string]any, envFiles ...string) *viper.Viper {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

func LoadClient(envFiles ...string) (Client, error) {
	var cfg Client
	if err := newViper(clientDefaults, envFiles...).Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("load client config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}

func LoadServer(envFiles ...string) (Server, error) {
	var cfg Server
	if err := newViper(serverDefaults, envFiles...).Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("load server config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("load server config: JWT_SECRET is required")
	}
	return cfg, nil
}

// DSN builds the postgres connection string. DATABASE_URL wins; an empty
// result means no database is configured.
func (s Server) DSN() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	if s.DBHost == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort,
	)
}
