package ranger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/http/api"
	"github.com/xy-planning-network/unitconv/http/resp"
	"github.com/xy-planning-network/unitconv/http/router"
	"github.com/xy-planning-network/unitconv/logger"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a unitconv server to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	api     *api.Handler
	cfg     Config
	ctx     context.Context
	cancel  context.CancelFunc
	httpLog *slog.Logger
	l       logger.Logger
	out     io.Writer
	srv     *http.Server
}

// New constructs a Ranger from the provided options.
// Configuration is first read from environment variables, cf. [NewConfig],
// and then the options passed into New are applied.
// Any component no option supplied is built from that configuration.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{cfg: NewConfig(), ctx: context.Background(), out: os.Stdout}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("%w: %s", unitconv.ErrBadConfig, err)
		}
	}

	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = defaultAppLogger(r.cfg, r.out)
	}

	if r.httpLog == nil {
		r.httpLog = defaultHTTPLogger(r.cfg, r.out)
	}

	if r.Responder == nil {
		r.Responder = defaultResponder(r.l)
	}

	r.api = api.New(r.Responder, r.l)

	if r.Router == nil {
		r.Router = defaultRouter(r.cfg.Env, r.api, defaultMiddlewares(r.cfg, r.httpLog))
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.cfg)
	}
	r.srv.Handler = r.Router

	r.l.Debug(fmt.Sprintf("using env %s", r.cfg.Env), nil)

	return r, nil
}

// API exposes the handlers serving the unit converter.
func (r *Ranger) API() *api.Handler { return r.api }

// Cancel stops Guide, as if a shutdown signal were received.
func (r *Ranger) Cancel() { r.cancel() }

// Config exposes the Config the Ranger was built from.
func (r *Ranger) Config() Config { return r.cfg }

func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Guide begins the web server.
//
// These, and (*Ranger).Cancel, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	ln, err := net.Listen("tcp", r.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}

	errc := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
		if err := r.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case s := <-ch:
		r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
	case <-r.ctx.Done():
	case err := <-errc:
		err = fmt.Errorf("could not serve: %w", err)
		r.l.Error(err.Error(), nil)
		return err
	}

	return r.Shutdown()
}

// Shutdown shuts down the web server, waiting up to 5 seconds for open requests.
func (r *Ranger) Shutdown() error {
	defer r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	if r.cfg.SentryDSN != "" {
		sentry.Flush(shutdownTimeout)
	}

	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
