package monitoring

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lazysort", &buf, INFO).(*logger)
	l.now = func() time.Time { return time.Unix(1000, 0).UTC() }

	l.Log(DEBUG, "session_opened", "dropped", nil)
	l.Log(INFO, "session_closed", "session closed", map[string]any{"partitions": 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "lazysort", entry.Component)
	assert.Equal(t, "session_closed", entry.EventType)
	assert.Equal(t, "session closed", entry.Message)
	assert.Equal(t, float64(3), entry.Details["partitions"])
	assert.True(t, entry.Timestamp.Equal(time.Unix(1000, 0)))
}

func TestLogger_Enabled(t *testing.T) {
	l := NewLogger("x", &bytes.Buffer{}, WARN)
	assert.False(t, l.Enabled(DEBUG))
	assert.False(t, l.Enabled(INFO))
	assert.True(t, l.Enabled(WARN))
	assert.True(t, l.Enabled(ERROR))

	assert.False(t, Nop().Enabled(ERROR))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   LogLevel
		wantOK bool
	}{
		{in: "debug", want: DEBUG, wantOK: true},
		{in: " Info ", want: INFO, wantOK: true},
		{in: "", want: INFO, wantOK: true},
		{in: "warning", want: WARN, wantOK: true},
		{in: "ERROR", want: ERROR, wantOK: true},
		{in: "verbose", want: INFO, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", DEBUG.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
