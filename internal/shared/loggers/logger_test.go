package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str(FieldRunID, "run-1").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "run-1", line[FieldRunID])
	assert.Equal(t, "warn", line["level"])
	assert.Contains(t, line, "time")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldComponent, "test").Logger().WithContext(context.Background())
	Ctx(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"test"`)
}
