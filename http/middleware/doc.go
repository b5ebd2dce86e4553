/*
The middleware package defines what a middleware is in unitconv and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Most applications should rely on ranger to assemble these.
When wiring them by hand, the following can be copy-pasted:

	vs := middleware.NewVisitors(middleware.DefaultRateLimit, middleware.DefaultRateBurst)
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.InjectIPAddress(),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.CORS(origin),
	}
*/
package middleware
