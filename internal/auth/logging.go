package auth

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs the logger used by this package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

var authFileEnabled atomic.Bool

// EnableAuthFile turns writing of log/auth.log on or off.
func EnableAuthFile(on bool) {
	authFileEnabled.Store(on)
}

// LogAuthAttempt records an authentication attempt. It always goes to the package logger and,
// when enabled, is appended to log/auth.log.
// Fields: timestamp (RFC3339) | level | authType | status | identifier? | message?
func LogAuthAttempt(level string, authType string, status string, identifier string, message string) {
	logger.Log(context.Background(), slogLevel(level), "auth attempt",
		"type", authType, "status", status, "identifier", identifier, "message", message)

	if !authFileEnabled.Load() {
		return
	}

	if err := os.MkdirAll("log", 0o750); err != nil {
		return
	}
	f, err := os.OpenFile("log/auth.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	ts := time.Now().UTC().Format(time.RFC3339)
	parts := []string{ts, level, authType, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}
	_, _ = f.WriteString(strings.Join(parts, " | ") + "\n")
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	}
	return slog.LevelInfo
}
