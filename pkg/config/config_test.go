package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:5173", cfg.HTTP.CORSAllowOrigins)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"admin", "editor"}, cfg.Auth.WriteRoles)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "http://localhost:5001", cfg.Client.BaseURL)
	assert.Equal(t, "0.0.0.0:5001", cfg.HTTP.Addr())
	// sin APP_ENV no se exponen trazas en las respuestas de error
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AUTH_WRITE_ROLES", " admin , ops ,")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("DB_FORCE_IPV4", "true")
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"admin", "ops"}, cfg.Auth.WriteRoles)
	assert.Equal(t, int32(7), cfg.DB.MaxConns)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_AuthSinSecretFalla(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "clientes", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/clientes?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
