package monitoring

import (
	"encoding/json"
	"io"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
}

type Logger interface {
	Log(level LogLevel, eventType string, message string, details map[string]any)
	Enabled(level LogLevel) bool
}

type logger struct {
	component string
	min       LogLevel
	now       func() time.Time
	mu        sync.Mutex
	enc       *json.Encoder
}

// NewLogger returns a Logger writing one JSON object per entry to w. Entries below min are
// dropped.
func NewLogger(component string, w io.Writer, min LogLevel) Logger {
	return &logger{
		component: component,
		min:       min,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *logger) Log(level LogLevel, eventType string, message string, details map[string]any) {
	if !l.Enabled(level) {
		return
	}
	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// A failed write has nowhere better to go.
	_ = l.enc.Encode(entry)
}

func (l *logger) Enabled(level LogLevel) bool {
	return level >= l.min
}

type nop struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}

func (nop) Log(LogLevel, string, string, map[string]any) {}

func (nop) Enabled(LogLevel) bool { return false }

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to its LogLevel.
func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, true
	case "INFO", "":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	default:
		return INFO, false
	}
}
