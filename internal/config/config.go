package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	Environment string
	HTTPPort    string

	// JWTSecret signs bearer tokens. There is deliberately no default: a
	// deployment without an explicit secret refuses to start.
	JWTSecret string
	TokenTTL  time.Duration

	AirtableKey     string
	AirtableBaseID  string
	UserTableID     string
	ProjectTableID  string
	LikeTableID     string
	AirtableTimeout time.Duration

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables. Optional values have
// defaults; missing secrets or store credentials are a hard error.
func Load() (Config, error) {
	cfg := Config{
		Environment:        getEnv("APP_ENV", "development"),
		HTTPPort:           getEnv("PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           getDuration("TOKEN_TTL", 24*time.Hour),
		AirtableKey:        os.Getenv("AIRTABLE_KEY"),
		AirtableBaseID:     os.Getenv("AIRTABLE_BASE_ID"),
		UserTableID:        os.Getenv("AIRTABLE_USER_TABLE_ID"),
		ProjectTableID:     os.Getenv("AIRTABLE_PROJECT_TABLE_ID"),
		LikeTableID:        os.Getenv("AIRTABLE_LIKE_TABLE_ID"),
		AirtableTimeout:    getDuration("AIRTABLE_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	required := map[string]string{
		"JWT_SECRET":                cfg.JWTSecret,
		"AIRTABLE_KEY":              cfg.AirtableKey,
		"AIRTABLE_BASE_ID":          cfg.AirtableBaseID,
		"AIRTABLE_USER_TABLE_ID":    cfg.UserTableID,
		"AIRTABLE_PROJECT_TABLE_ID": cfg.ProjectTableID,
		"AIRTABLE_LIKE_TABLE_ID":    cfg.LikeTableID,
	}
	for key, value := range required {
		if value == "" {
			return Config{}, fmt.Errorf("%s is required", key)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(key string, def []string) []string {
	if v, ok := os.LookupEnv(key); ok {
		var cleaned []string
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		if len(cleaned) > 0 {
			return cleaned
		}
	}
	return def
}
