package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", "json", &buf)
	l.Info().Str("route", "/faq").Msg("rendered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "rendered", line["message"])
	assert.Equal(t, "/faq", line["route"])
	assert.Equal(t, "nbh-site", line["service"])
	assert.Contains(t, line, "time")
	assert.Contains(t, line, "caller")
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "json", &buf)
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	l := New("chatty", "json", &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = New("", "json", &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = New("DEBUG", "json", &bytes.Buffer{})
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "console", &buf)
	l.Info().Msg("listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.NotContains(t, out, `"message"`)
}
