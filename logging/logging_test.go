package logging

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug": pterm.LogLevelDebug,
		"info":  pterm.LogLevelInfo,
		"":      pterm.LogLevelInfo,
		"WARN":  pterm.LogLevelWarn,
		"error": pterm.LogLevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("quiet")
	assert.NotContains(t, buf.String(), "quiet")

	logger.Warn("loud", "round", "r-1")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}
