package msi

import (
	"bytes"
	"log/slog"
)

// Messenger sends a line of text to the installer log.
type Messenger interface {
	LogMessage(text string) error
}

// messageWriter turns each handler write, one per record, into an installer
// log message.
type messageWriter struct {
	m Messenger
}

func (w messageWriter) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\r\n"))
	if err := w.m.LogMessage(line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewLogHandler returns a slog handler that writes text records to the
// installer log through m. Installer logs already carry a timestamp per line,
// so the time attribute is dropped.
func NewLogHandler(m Messenger, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(messageWriter{m}, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}
