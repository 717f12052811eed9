package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DevelopmentWritesTextWithDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	flush := Init(true, "", &buf)
	defer flush()

	slog.Debug("token issued", "username", "alice")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=\"token issued\"")
	assert.Contains(t, out, "username=alice")
}

func TestInit_ProductionWritesJSONAndDropsDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	flush := Init(false, "", &buf)
	defer flush()

	Log.Debug("hidden")
	Log.Info("booking created", "room", "Classroom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "booking created", entry["msg"])
	assert.Equal(t, "Classroom", entry["room"])
}
