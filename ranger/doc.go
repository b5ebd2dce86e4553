/*
Package ranger initializes and manages a unitconv web server with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type,
constructed with [New].
A [Ranger] serves the unit converter's API, cf. [api.Handler],
behind a default middleware stack:

  - InjectIPAddress
  - RequestID
  - LogRequest
  - RateLimit
  - ForceHTTPS
  - CORS

[*Ranger.Guide] begins the web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000) in development
and on every interface at [DefaultPort] elsewhere,
assuming a reverse proxy proxies requests.
Stop that web server with [*Ranger.Shutdown],
call [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a unitconv server through environment variables, cf. [NewConfig],
and by passing a [RangerOption] to [New].
Environment variables can be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT; cf. [unitconv.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_JSON: whether to log JSON in development; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [log/slog.Level]
  - PORT: the port the application should listen on; default: :3000
  - RATE_BURST: the number of requests a single IP address can make at once; default: 20
  - RATE_LIMIT: the number of requests per second a single IP address can make; default: 5
  - SENTRY_DSN: the DSN errors and panics are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout, as understood by [time.ParseDuration], for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout, as understood by [time.ParseDuration], for writing HTTP responses; default: 5s
*/
package ranger
