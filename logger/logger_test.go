package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel(LOG_LEVEL_DEBUG))
	require.Equal(t, zerolog.InfoLevel, ParseLevel(LOG_LEVEL_INFO))
	require.Equal(t, zerolog.WarnLevel, ParseLevel(LOG_LEVEL_WARN))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel(LOG_LEVEL_ERROR))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := Output
	Output = &buf
	defer func() { Output = previous }()

	t.Setenv(LOG_LEVEL_ENV, LOG_LEVEL_INFO)
	SetupLogging()

	log := NewLogger("Test")
	log.Debug().Msg("hidden")
	log.Info().Str("file", "train.conll").Msg("visible")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "Test", entry["component"])
	require.Equal(t, "info", entry["level_name"])
	require.Equal(t, "visible", entry["message"])
	require.Equal(t, "train.conll", entry["file"])
	require.Contains(t, entry, "timestamp")
}
