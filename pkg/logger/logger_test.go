package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestInfoWritesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: zerolog.InfoLevel, Output: &buf})

	l.Info("starting server", "port", 8080)

	out := buf.String()
	assert.Contains(t, out, "starting server")
	assert.Contains(t, out, "8080")
}

func TestLevelFiltersLowerEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: zerolog.WarnLevel, Output: &buf})

	l.Info("suppressed")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFieldsBindsToEveryEntry(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: zerolog.InfoLevel, Output: &buf}).
		WithFields(map[string]interface{}{"service": "careportal-api"})

	l.Info("ready")
	assert.Contains(t, buf.String(), "careportal-api")
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: zerolog.InfoLevel, Output: &buf})

	l.Error(assert.AnError, "snapshot failed")

	out := buf.String()
	assert.Contains(t, out, "snapshot failed")
	assert.Contains(t, out, assert.AnError.Error())
}
