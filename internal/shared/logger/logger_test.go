package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcms/internal/shared/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInit_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modcms.log")

	err := Init(&config.LoggerConfig{Level: "debug", Format: "json", OutputPath: path}, false)
	require.NoError(t, err)

	Get().Debug("catalog loaded", "categories", 3)
	assert.FileExists(t, path)
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := NewNop().Named("test").With("k", "v")
	log.Errorw("ignored", "error", "x")
}
