package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, InfoLevel)

	log.Info("Store", "settings saved", map[string]interface{}{"path": "settings.json"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Store", entry["component"])
	assert.Equal(t, "settings saved", entry["message"])
	assert.Equal(t, "settings.json", entry["path"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, InfoLevel)

	log.Error("Dock", errors.New("boom"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("Counter", "tick", nil)
	log.Info("Counter", "started", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Counter", "late", nil)
	assert.Contains(t, buf.String(), `"late"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, "warn", WarnLevel.String())
}
