package mediainfo

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// Optional is a value that may be absent. The engine answers with strings
// only; typed accessors report an empty or malformed answer as absent rather
// than as an error.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// Or returns the value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if !o.Valid {
		return def
	}
	return o.Value
}

// GetInt64 returns the named parameter parsed as a base-10 integer. An empty
// answer is absent. An answer that does not parse is absent too and is
// logged at debug level with the field and calling function, so bad data
// from the engine can be traced. The error reports handle state only.
func (m *MediaInfo) GetInt64(kind StreamKind, streamIndex int, name string) (Optional[int64], error) {
	raw, err := m.Get(kind, streamIndex, name)
	if err != nil {
		return Optional[int64]{}, err
	}
	return m.parseInt64(raw, kind, streamIndex, name, 1), nil
}

// GetFloat64 is GetInt64 for floating-point parameters.
func (m *MediaInfo) GetFloat64(kind StreamKind, streamIndex int, name string) (Optional[float64], error) {
	raw, err := m.Get(kind, streamIndex, name)
	if err != nil {
		return Optional[float64]{}, err
	}
	return m.parseFloat64(raw, kind, streamIndex, name, 1), nil
}

// skip is the number of frames between parseInt64 and the function to
// report as the caller: 1 when called straight from an exported accessor.
func (m *MediaInfo) parseInt64(raw string, kind StreamKind, streamIndex int, name string, skip int) Optional[int64] {
	if raw == "" {
		return Optional[int64]{}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		m.logParseFailure("int64", raw, kind, streamIndex, name, skip+1)
		return Optional[int64]{}
	}
	return Some(v)
}

func (m *MediaInfo) parseFloat64(raw string, kind StreamKind, streamIndex int, name string, skip int) Optional[float64] {
	if raw == "" {
		return Optional[float64]{}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		m.logParseFailure("float64", raw, kind, streamIndex, name, skip+1)
		return Optional[float64]{}
	}
	return Some(v)
}

func (m *MediaInfo) logParseFailure(typ, raw string, kind StreamKind, streamIndex int, name string, skip int) {
	if !m.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{
		"type", typ,
		"value", raw,
		"stream", kind.String(),
		"index", streamIndex,
		"field", name,
	}
	if m.path != "" {
		attrs = append(attrs, "file", m.path)
	}
	if caller := callerName(skip + 1); caller != "" {
		attrs = append(attrs, "caller", caller)
	}
	m.logger.Debug("could not parse MediaInfo value", attrs...)
}

// callerName returns the function skip frames above its caller.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return fn.Name()
}
