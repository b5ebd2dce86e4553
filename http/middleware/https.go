package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/unitconv"
)

// ForceHTTPS permanently redirects HTTP requests to HTTPS unless env is development.
//
// "X-Forwarded-Proto" decides whether HTTPS was requested,
// since a unitconv app is expected to run behind a TLS-terminating proxy.
func ForceHTTPS(env unitconv.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
