package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the number of requests per second a Visitor may make.
	DefaultRateLimit rate.Limit = 5

	// DefaultRateBurst is the number of requests a Visitor may make at once.
	DefaultRateBurst = 20

	visitorTTL = time.Hour
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst     int
	limit     rate.Limit
	lastSweep time.Time
	val       map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors whose members are each limited to limit requests
// every second with bursts of up to burst.
//
// A limit or burst that is not positive is replaced with DefaultRateLimit or DefaultRateBurst.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 {
		limit = DefaultRateLimit
	}

	if burst <= 0 {
		burst = DefaultRateBurst
	}

	return &Visitors{
		burst:     burst,
		limit:     limit,
		lastSweep: time.Now().UTC(),
		val:       make(map[string]Visitor),
	}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes every Visitor not seen in over an hour.
// It sweeps at most once every visitorTTL.
func (vs *Visitors) cleanup(now time.Time) {
	vs.Lock()
	defer vs.Unlock()

	if now.Sub(vs.lastSweep) < visitorTTL {
		return
	}

	vs.lastSweep = now
	for ip, v := range vs.val {
		if now.Sub(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler,
// responding 429 Too Many Requests once a visitor exhausts its limiter.
//
// Visitors are keyed by the IP address ClientIPAddress finds.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(ClientIPAddress(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup(time.Now().UTC())
			h.ServeHTTP(w, r)
		})
	}
}
