package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_PrintInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintInfo("starting server", map[string]string{"addr": ":4000"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "starting server", entries[0]["message"])
	assert.Equal(t, map[string]interface{}{"addr": ":4000"}, entries[0]["properties"])
	assert.NotEmpty(t, entries[0]["time"])
	assert.NotContains(t, entries[0], "trace")
}

func TestLogger_PrintErrorHasTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintError(errors.New("boom"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "boom", entries[0]["message"])
	assert.NotContains(t, entries[0], "properties")
	assert.NotEmpty(t, entries[0]["trace"])
}

func TestLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)

	logger.PrintInfo("dropped", nil)
	logger.PrintError(errors.New("kept"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])

	buf.Reset()
	New(&buf, LevelOff).PrintError(errors.New("dropped"), nil)
	assert.Zero(t, buf.Len())
}

func TestLogger_WriterAdapters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	n, err := logger.Write([]byte("http: TLS handshake error"))
	require.NoError(t, err)
	assert.Equal(t, len("http: TLS handshake error"), n)

	logger.Printf("slow sql %dms", 250)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "http: TLS handshake error", entries[0]["message"])
	assert.Equal(t, "info", entries[1]["level"])
	assert.Equal(t, "slow sql 250ms", entries[1]["message"])
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
	assert.Equal(t, "", LevelOff.String())
}
