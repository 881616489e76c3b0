package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAdapter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLoggerAdapter("production", &buf)

	log.Debug("hidden", nil)
	log.Info("Catalog loaded", map[string]interface{}{
		"vehicles": 3,
		"source":   "api",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Catalog loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["vehicles"])
	assert.Equal(t, "api", entry["source"])
}

func TestLoggerAdapter_DevelopmentIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newLoggerAdapter("development", &buf)

	log.Debug("Calling dealership API", map[string]interface{}{"op": "ListCars"})
	log.Warn("Failed to load favorites", nil)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "op=ListCars")
	assert.Contains(t, out, "level=WARN")
}
