package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// redactedKeys are field names that must never reach a log sink.
// Matching is case-insensitive.
var redactedKeys = map[string]struct{}{
	"signature":       {},
	"credential":      {},
	"credential_hash": {},
	"credentialhash":  {},
	"session":         {},
	"token":           {},
	"authorization":   {},
	"password":        {},
}

// redactingCore drops sensitive fields before delegating to the wrapped core
type redactingCore struct {
	zapcore.Core
}

func newRedactingCore(core zapcore.Core) zapcore.Core {
	return &redactingCore{Core: core}
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(redact(fields))}
}

func (c *redactingCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *redactingCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, redact(fields))
}

// IsRedacted reports whether a field with the given key is dropped from logs
func IsRedacted(key string) bool {
	_, ok := redactedKeys[strings.ToLower(key)]
	return ok
}

func redact(fields []zapcore.Field) []zapcore.Field {
	kept := fields[:0:0]
	for _, f := range fields {
		if IsRedacted(f.Key) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
