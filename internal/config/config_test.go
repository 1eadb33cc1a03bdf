package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AIRTABLE_KEY", "key")
	t.Setenv("AIRTABLE_BASE_ID", "appBase1")
	t.Setenv("AIRTABLE_USER_TABLE_ID", "tblUsers")
	t.Setenv("AIRTABLE_PROJECT_TABLE_ID", "tblProjects")
	t.Setenv("AIRTABLE_LIKE_TABLE_ID", "tblLikes")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.AirtableTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_RequiredValues(t *testing.T) {
	// No fallback secret: the process refuses to start instead.
	keys := []string{
		"JWT_SECRET",
		"AIRTABLE_KEY",
		"AIRTABLE_BASE_ID",
		"AIRTABLE_USER_TABLE_ID",
		"AIRTABLE_PROJECT_TABLE_ID",
		"AIRTABLE_LIKE_TABLE_ID",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
