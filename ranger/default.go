package ranger

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/lmittmann/tint"
	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/http/api"
	"github.com/xy-planning-network/unitconv/http/middleware"
	"github.com/xy-planning-network/unitconv/http/resp"
	"github.com/xy-planning-network/unitconv/http/router"
	"github.com/xy-planning-network/unitconv/logger"
	"golang.org/x/time/rate"
)

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
func defaultAppLogger(cfg Config, output io.Writer) logger.Logger {
	slogger := newSlogger(unitconv.AppLogKind, cfg, output)
	var l logger.Logger = logger.New(slogger)
	l.Debug("setting up app logger", nil)
	if cfg.SentryDSN != "" {
		l = logger.NewSentryLogger(cfg.Env, l, cfg.SentryDSN)
		l.Debug("using SentryLogger for app logger", nil)
	}

	slog.SetDefault(slogger)

	return l
}

// defaultHTTPLogger constructs a [*log/slog.Logger] for use in HTTP router logging.
func defaultHTTPLogger(cfg Config, output io.Writer) *slog.Logger {
	sl := newSlogger(unitconv.HTTPLogKind, cfg, output)
	sl.Debug("setting up HTTP router logger")

	return sl
}

// newSlogger toggles constructing the specific [*log/slog.Logger]
// from the given parameters.
//
// Outside development, or when LOG_JSON is true, records are JSON.
// Otherwise, app records are colorized by tint.
func newSlogger(kind slog.Value, cfg Config, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(cfg.LogLevel)

	useJSON := !cfg.Env.IsDevelopment() || cfg.LogJSON
	isHTTP := kind.String() == unitconv.HTTPLogKind.String()

	var handler slog.Handler
	switch {
	case !isHTTP && useJSON:
		opts := &slog.HandlerOptions{
			AddSource:   true,
			Level:       lvl,
			ReplaceAttr: logger.TruncSourceAttr,
		}
		handler = slog.NewJSONHandler(out, opts)

	case !isHTTP && !useJSON:
		opts := &tint.Options{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05.000",
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.ColorizeLevel(groups, a)
				return logger.TruncSourceAttr(groups, a)
			},
		}
		handler = tint.NewHandler(out, opts)

	case isHTTP && useJSON:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewJSONHandler(out, opts)

	default:
		opts := &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = logger.DeleteLevelAttr(groups, a)
				return logger.DeleteMessageAttr(groups, a)
			},
		}
		handler = slog.NewTextHandler(out, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{{Key: unitconv.LogKindKey, Value: kind}})

	return slog.New(handler)
}

// defaultMiddlewares lists the [middleware.Adapter] applied to every request, in order.
func defaultMiddlewares(cfg Config, httpLog *slog.Logger) []middleware.Adapter {
	vs := middleware.NewVisitors(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	return []middleware.Adapter{
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(httpLog),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(cfg.Env),
		middleware.CORS(cfg.CORSOrigin),
	}
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(resp.WithLogger(l))
}

// defaultRouter constructs a [*router.Router] to be used by the web server,
// serving the unit converter's API.
func defaultRouter(env unitconv.Environment, h *api.Handler, mws []middleware.Adapter) *router.Router {
	route := router.New(env)
	route.OnEveryRequest(mws...)
	route.HandleRoutes(h.Routes())
	route.HandleNotFound(h.NotFound)

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
