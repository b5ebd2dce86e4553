package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/http/middleware"
	"github.com/xy-planning-network/unitconv/http/router"
)

func mark(order *[]string, name string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name)
			h.ServeHTTP(w, r)
		})
	}
}

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	var order []string
	rt := router.New(unitconv.Testing)
	rt.OnEveryRequest(mark(&order, "every"))
	rt.HandleRoutes(
		[]router.Route{{
			Path:        "/test",
			Method:      http.MethodGet,
			Handler:     func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") },
			Middlewares: []middleware.Adapter{mark(&order, "route")},
		}},
		mark(&order, "group"),
	)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"every", "group", "route", "handler"}, order)

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/test", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	var order []string
	rt := router.New(unitconv.Testing)
	rt.OnEveryRequest(mark(&order, "every"))
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/missing", nil)

	// Act
	rt.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, []string{"every"}, order)
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	var order []string
	rt := router.New(unitconv.Testing)
	rt.OnEveryRequest(mark(&order, "every"))

	sub := rt.Subrouter("/api")
	sub.OnEveryRequest(mark(&order, "api"))
	sub.Handle(router.Route{
		Path:    "/ping",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") },
	})

	rt.Handle(router.Route{
		Path:    "/ping",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) { order = append(order, "root") },
	})

	// Act
	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Assert
	require.Equal(t, []string{"every", "api", "handler", "every", "root"}, order)
}

func TestRouterRecoversPanics(t *testing.T) {
	// Arrange
	rt := router.New(unitconv.Testing)
	rt.Handle(router.Route{
		Path:    "/panic",
		Method:  http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) { panic("boom") },
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/panic", nil)

	// Act + Assert
	require.NotPanics(t, func() { rt.ServeHTTP(w, r) })
}
