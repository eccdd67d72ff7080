package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestJSONOutputCarriesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: zerolog.DebugLevel, UseJSON: true})

	log.Error("Converter", errors.New("boom"), map[string]interface{}{"path": "/tmp/a.png"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Converter", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "/tmp/a.png", entry["path"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Level: zerolog.InfoLevel, UseJSON: true})

	log.Debug("Store", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Info("Store", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("IMAGECONVERTER_LOG_LEVEL", "debug")
	t.Setenv("IMAGECONVERTER_JSON_LOGS", "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.True(t, cfg.UseJSON)
}
