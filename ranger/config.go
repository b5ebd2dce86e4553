package ranger

import (
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/http/middleware"
)

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = slog.LevelInfo
	logJSONEnvVar   = "LOG_JSON"
	defaultLogJSON  = false
	sentryDsnEnvVar = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Middleware defaults
	corsOriginEnvVar = "CORS_ORIGIN"
	rateLimitEnvVar  = "RATE_LIMIT"
	rateBurstEnvVar  = "RATE_BURST"
)

// A Config is every setting a Ranger reads from the environment.
type Config struct {
	Env       unitconv.Environment
	LogLevel  slog.Level
	LogJSON   bool
	SentryDSN string

	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	CORSOrigin string
	RateLimit  float64
	RateBurst  int
}

// NewConfig reads a Config from environment variables,
// falling back to defaults for any unset or malformed value.
func NewConfig() Config {
	return Config{
		Env:       unitconv.EnvVarOrEnv(environmentEnvVar, unitconv.Development),
		LogLevel:  unitconv.EnvVarOrLogLevel(logLevelEnvVar, defaultLogLvl),
		LogJSON:   unitconv.EnvVarOrBool(logJSONEnvVar, defaultLogJSON),
		SentryDSN: os.Getenv(sentryDsnEnvVar),

		Host:         unitconv.EnvVarOrString(hostEnvVar, DefaultHost),
		Port:         normalizePort(unitconv.EnvVarOrString(portEnvVar, DefaultPort)),
		ReadTimeout:  unitconv.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: unitconv.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:  unitconv.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),

		CORSOrigin: os.Getenv(corsOriginEnvVar),
		RateLimit:  unitconv.EnvVarOrFloat(rateLimitEnvVar, float64(middleware.DefaultRateLimit)),
		RateBurst:  unitconv.EnvVarOrInt(rateBurstEnvVar, middleware.DefaultRateBurst),
	}
}

// Addr is the address the web server listens on.
//
// Outside development the server binds every interface,
// assuming a reverse proxy fronts it.
func (c Config) Addr() string {
	if c.Env.IsDevelopment() || c.Env.IsTesting() {
		return c.Host + c.Port
	}

	return c.Port
}

// URL is the base URL the web server is reachable at.
func (c Config) URL() *url.URL {
	return &url.URL{Scheme: "http", Host: net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))}
}

// normalizePort prefixes port with a colon, if missing.
func normalizePort(port string) string {
	if port == "" || port[0] == ':' {
		return port
	}

	return ":" + port
}
