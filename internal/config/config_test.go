package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironDefaults(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "ASSESS_VARIANT", "PORT", "LOG_LEVEL", "LOG_FORMAT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := FromEnviron()
	require.NoError(t, err)
	require.Equal(t, "", cfg.GeminiAPIKey)
	require.Equal(t, "assessor", cfg.Variant)
	require.Equal(t, ":10000", cfg.Addr())
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Origins())
}

func TestFromEnvironOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  secret  ")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("ASSESS_VARIANT", "basic")
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := FromEnviron()
	require.NoError(t, err)
	require.Equal(t, "secret", cfg.GeminiAPIKey)
	require.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	require.Equal(t, "basic", cfg.Variant)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("PORT", "9000")
	require.NoError(t, os.Unsetenv("GEMINI_MODEL"))
	t.Cleanup(func() { _ = os.Unsetenv("GEMINI_MODEL") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_MODEL=from-file\nPORT=1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.GeminiModel)
	require.Equal(t, ":9000", cfg.Addr(), "environment wins over .env")
}

func TestLoadMissingDotenv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestSetupLogging(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	require.NoError(t, Config{LogLevel: "debug", LogFormat: "json"}.SetupLogging())
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.Error(t, Config{LogLevel: "loud"}.SetupLogging())
	require.Error(t, Config{LogLevel: "info", LogFormat: "xml"}.SetupLogging())
}
