/*
Package router maps HTTP requests to their handlers.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as a thin wrapper around that package.

A [*Router] leverages a standardized data model, a [Route],
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
the middlewares set by OnEveryRequest, then those passed to HandleRoutes,
then those on the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks.
Thus, a [*Router] provides conveniences for making a single call to register many logically associated Routes.
*/
package router
