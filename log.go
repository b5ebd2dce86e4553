package unitconv

import (
	"log/slog"
	"net/url"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	AppLogKind  = slog.StringValue("app")
	HTTPLogKind = slog.StringValue("http")

	// MaskedLogValue is a convenience [log/slog.Value]
	// to be used in implementations of [log/slog.LogValuer]
	// to hide sensitive data from log messages.
	MaskedLogValue = slog.StringValue(LogMaskVal)
)

// Mask replaces all values set for key in vals with a single LogMaskVal.
// If key is not set in vals, Mask does nothing.
func Mask(vals url.Values, key string) {
	if !vals.Has(key) {
		return
	}

	vals.Set(key, LogMaskVal)
}

// NewLogLevel maps val to a [log/slog.Level].
// Unknown values map to [log/slog.LevelInfo].
func NewLogLevel(val string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(val)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
