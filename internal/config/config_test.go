package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
	assert.False(t, (&Config{Env: "production"}).IsDevelopment())
	assert.False(t, (&Config{Env: ""}).IsDevelopment())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.ClientOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CLIENT_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("SWAGGER_HOST", "api.example.com")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.ClientOrigins)
	assert.Equal(t, "api.example.com", cfg.SwaggerHost)
}
