package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("json with level", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger(&Config{LogLevel: "info", LogFormat: "json"}, out)
		logger.Debug("hidden")
		logger.Info("shown", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, "gospec", record["app"])
		assert.Equal(t, "value", record["key"])
		assert.NotContains(t, record, "source")
	})

	t.Run("debug adds source", func(t *testing.T) {
		out := &bytes.Buffer{}
		newLogger(&Config{LogLevel: "debug", LogFormat: "text"}, out).Debug("traced")
		assert.Contains(t, out.String(), "source=")
		assert.Contains(t, out.String(), "msg=traced")
	})

	t.Run("unknown level falls back to warn", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := newLogger(&Config{LogLevel: "chatty"}, out)
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "msg=shown")
	})
}
