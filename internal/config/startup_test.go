package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearStartupEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PATCHWORK_LOG_LEVEL",
		"PATCHWORK_VIDEO_HOST",
		"PATCHWORK_WINDOW_WIDTH",
		"PATCHWORK_WINDOW_HEIGHT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadStartupDefaults(t *testing.T) {
	clearStartupEnv(t)

	cfg, err := LoadStartup(WithEnvFile(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultStartup(), cfg)
}

func TestLoadStartupMissingEnvFileIgnored(t *testing.T) {
	clearStartupEnv(t)

	cfg, err := LoadStartup(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)

	assert.Equal(t, DefaultStartup(), cfg)
}

func TestLoadStartupFromEnv(t *testing.T) {
	clearStartupEnv(t)
	t.Setenv("PATCHWORK_LOG_LEVEL", "debug")
	t.Setenv("PATCHWORK_VIDEO_HOST", "www.youtube-nocookie.com")
	t.Setenv("PATCHWORK_WINDOW_WIDTH", "800")

	cfg, err := LoadStartup(WithEnvFile(""))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "www.youtube-nocookie.com", cfg.VideoHost)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 760, cfg.WindowHeight)
}

func TestLoadStartupEnvFilePriority(t *testing.T) {
	clearStartupEnv(t)
	path := writeEnvFile(t, "PATCHWORK_LOG_LEVEL=warn\nPATCHWORK_WINDOW_HEIGHT=900\n")
	t.Setenv("PATCHWORK_WINDOW_HEIGHT", "1000")

	cfg, err := LoadStartup(WithEnvFile(path))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.WindowHeight)
}

func TestLoadStartupValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "PATCHWORK_LOG_LEVEL", value: "verbose"},
		{name: "bad host", key: "PATCHWORK_VIDEO_HOST", value: "not a host"},
		{name: "window too narrow", key: "PATCHWORK_WINDOW_WIDTH", value: "100"},
		{name: "not a number", key: "PATCHWORK_WINDOW_HEIGHT", value: "tall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearStartupEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadStartup(WithEnvFile(""))
			assert.Error(t, err)
		})
	}
}
