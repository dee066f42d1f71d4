package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Storage: StorageConfig{Backend: BackendLocal, DataPath: "/tmp/booknote"},
		Server: ServerConfig{
			Name:         "BookNote Server",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Spell: SpellConfig{Delay: time.Second},
		Save:  SaveConfig{RPS: 1, Burst: 3},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad environment", func(c *Config) { c.App.Environment = "qa" }},
		{"bad log level", func(c *Config) { c.Logger.Level = "verbose" }},
		{"bad backend", func(c *Config) { c.Storage.Backend = "supabase" }},
		{"empty data path", func(c *Config) { c.Storage.DataPath = "" }},
		{"zero save rps", func(c *Config) { c.Save.RPS = 0 }},
		{"negative spell delay", func(c *Config) { c.Spell.Delay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetConfigValuePrecedence(t *testing.T) {
	t.Setenv("BOOKNOTE_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "BOOKNOTE_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "BOOKNOTE_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "BOOKNOTE_TEST_MISSING", "default"))
}

func TestGetBoolConfigValue(t *testing.T) {
	for _, v := range []string{"true", "1", "yes", "TRUE", "Yes"} {
		assert.True(t, getBoolConfigValue(v, "", false), "value %q", v)
	}
	for _, v := range []string{"false", "0", "no", "off"} {
		assert.False(t, getBoolConfigValue(v, "", true), "value %q", v)
	}
	assert.True(t, getBoolConfigValue("", "BOOKNOTE_TEST_MISSING", true))
}

func TestGetFloatConfigValue(t *testing.T) {
	assert.Equal(t, 2.5, getFloatConfigValue("2.5", "", 1))
	assert.Equal(t, 1.0, getFloatConfigValue("", "BOOKNOTE_TEST_MISSING", 1))
	assert.Equal(t, 1.0, getFloatConfigValue("not-a-number", "", 1))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nBOOKNOTE_ENV_A=hello\nBOOKNOTE_ENV_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BOOKNOTE_ENV_A", "")
	t.Setenv("BOOKNOTE_ENV_B", "")
	os.Unsetenv("BOOKNOTE_ENV_A")
	os.Unsetenv("BOOKNOTE_ENV_B")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("BOOKNOTE_ENV_A"))
	assert.Equal(t, "quoted", os.Getenv("BOOKNOTE_ENV_B"))
}

func TestLoadEnvFileBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JUSTAKEY\n"), 0o600))
	assert.Error(t, loadEnvFile(path))
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/booknote", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "booknote"), got)
}
