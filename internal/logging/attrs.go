package logging

import (
	"log/slog"
	"path/filepath"
)

type Attr = slog.Attr

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

// Error renders err under the "error" key; nil prints as <nil>.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// Path records a file path in cleaned form.
func Path(key, path string) Attr { return slog.String(key, filepath.Clean(path)) }

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger stamps the component attribute on logger, or on a
// discarding logger when logger is nil.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// Triage describes a warning for whoever reads the log: what kind of event
// happened, what to check, and what the user lost.
type Triage struct {
	EventType string
	Hint      string
	Impact    string
}

func (t Triage) attrs() []any {
	hint := t.Hint
	if hint == "" {
		hint = "check logs for details"
	}
	impact := t.Impact
	if impact == "" {
		impact = "operation completed with warnings"
	}
	return []any{
		String(FieldEventType, t.EventType),
		String(FieldErrorHint, hint),
		String(FieldImpact, impact),
	}
}

// WarnWithContext logs msg at warn level with the triage fields always
// present, defaults filled in.
func WarnWithContext(logger *slog.Logger, msg string, triage Triage, attrs ...Attr) {
	if logger == nil {
		return
	}
	args := triage.attrs()
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Warn(msg, args...)
}
