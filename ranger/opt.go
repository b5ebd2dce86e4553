package ranger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/http/resp"
	"github.com/xy-planning-network/unitconv/http/router"
	"github.com/xy-planning-network/unitconv/logger"
)

// A RangerOption configures a *Ranger under construction.
//
// New applies every RangerOption before filling in defaults,
// so a RangerOption only sets what it names;
// the components it does not name are built from the resulting configuration.
type RangerOption func(rng *Ranger) error

// WithConfig replaces the Config read from environment variables.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) error {
		if err := cfg.Env.Valid(); err != nil {
			return err
		}

		rng.cfg = cfg
		return nil
	}
}

// WithContext exposes the provided context.Context to the app.
// Guide stops once ctx is done.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) error {
		if ctx == nil {
			return fmt.Errorf("%w: nil context.Context", unitconv.ErrBadAny)
		}

		rng.ctx = ctx
		return nil
	}
}

// WithEnv casts the provided string, in any case, into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) error {
		e := unitconv.Environment(strings.ToUpper(env))
		if e.Valid() != nil {
			e = unitconv.EnvVarOrEnv(environmentEnvVar, unitconv.Development)
		}

		rng.cfg.Env = e
		return nil
	}
}

// WithHTTPLogger sets the [*log/slog.Logger] LogRequest writes through.
func WithHTTPLogger(l *slog.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.httpLog = l
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		rng.l = l
		return nil
	}
}

// WithOutput sets where default loggers write; os.Stdout otherwise.
func WithOutput(w io.Writer) RangerOption {
	return func(rng *Ranger) error {
		if w == nil {
			return fmt.Errorf("%w: nil io.Writer", unitconv.ErrBadAny)
		}

		rng.out = w
		return nil
	}
}

// WithResponder exposes the *resp.Responder to the app.
func WithResponder(r *resp.Responder) RangerOption {
	return func(rng *Ranger) error {
		rng.Responder = r
		return nil
	}
}

// WithRouter exposes the *router.Router to the app.
// The API routes are not registered on r; call HandleRoutes to do so.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) error {
		rng.Router = r
		return nil
	}
}

// WithServer exposes the *http.Server to the app.
// The Ranger sets the handler of s.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) error {
		rng.srv = s
		return nil
	}
}
