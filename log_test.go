package unitconv_test

import (
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/unitconv"
)

func TestMask(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals url.Values
		key  string
		want url.Values
	}{
		{"zero", url.Values{}, "", url.Values{}},
		{
			"mismatch",
			url.Values{"password": []string{"hunter2"}},
			"passwrod",
			url.Values{"password": []string{"hunter2"}},
		},
		{
			"match",
			url.Values{"password": []string{"hunter2"}},
			"password",
			url.Values{"password": []string{unitconv.LogMaskVal}},
		},
		{
			"squash-multiple",
			url.Values{"password": []string{"hunter2", "hunter3"}},
			"password",
			url.Values{"password": []string{unitconv.LogMaskVal}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			unitconv.Mask(tc.vals, tc.key)
			require.Equal(t, tc.want, tc.vals)
		})
	}
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		name string
		val  string
		want slog.Level
	}{
		{"zero", "", slog.LevelInfo},
		{"debug", "DEBUG", slog.LevelDebug},
		{"lower", "warn", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"unknown", "LOUD", slog.LevelInfo},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, unitconv.NewLogLevel(tc.val))
		})
	}
}
