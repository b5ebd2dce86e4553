package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/unitconv"
)

// ReportPanic encloses the env and returns an Adapter that
// wraps the passed in http.Handler in sentryhttp.Handle
// in order to recover and report panics.
//
// In development, NoopAdapter returns and panics propagate.
func ReportPanic(env unitconv.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}
