package logger

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"channelkey":    {},
	"channel_key":   {},
	"password":      {},
	"authorization": {},
}

var current atomic.Pointer[log.Logger]

func init() {
	current.Store(newLogger(os.Stderr, log.InfoLevel, log.TextFormatter))
}

// Configure replaces the process logger. Unknown levels fall back to info and
// any format other than "json" or "logfmt" writes text.
func Configure(w io.Writer, level string, format string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	current.Store(newLogger(w, lvl, formatter))
}

func newLogger(w io.Writer, level log.Level, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Formatter:       formatter,
	})
}

func Debug(message string, fields Fields) {
	current.Load().Debug(message, keyvals(fields)...)
}

func Info(message string, fields Fields) {
	current.Load().Info(message, keyvals(fields)...)
}

func Warn(message string, fields Fields) {
	current.Load().Warn(message, keyvals(fields)...)
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	current.Load().Error(message, keyvals(base)...)
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func keyvals(fields Fields) []any {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		if isSensitiveKey(k) {
			out = append(out, k, "******")
			continue
		}
		out = append(out, k, fields[k])
	}
	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
