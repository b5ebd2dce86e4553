package api

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/unitconv/http/req"
	"github.com/xy-planning-network/unitconv/http/resp"
	"github.com/xy-planning-network/unitconv/http/router"
	"github.com/xy-planning-network/unitconv/logger"
)

const (
	ConvertPath = "/api/convert"
	HealthPath  = "/healthz"
	UnitsPath   = "/api/units"
)

// A Handler serves the unit converter's endpoints.
type Handler struct {
	*resp.Responder
	logger logger.Logger
	parser *req.Parser
}

// New constructs a *Handler responding through d and logging through l.
// A nil d or l is replaced with a default.
func New(d *resp.Responder, l logger.Logger) *Handler {
	if l == nil {
		l = logger.New(nil)
	}

	if d == nil {
		d = resp.NewResponder(resp.WithLogger(l))
	}

	return &Handler{Responder: d, logger: l, parser: req.NewParser()}
}

// Routes lists every Route the Handler serves.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Path: ConvertPath, Method: http.MethodGet, Handler: h.Convert},
		{Path: UnitsPath, Method: http.MethodGet, Handler: h.Units},
		{Path: HealthPath, Method: http.MethodGet, Handler: h.Health},
	}
}

// NotFound responds 404 with a plain text body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	err := h.Text(w, r, resp.Code(http.StatusNotFound), resp.Data(http.StatusText(http.StatusNotFound)))
	if err != nil {
		h.Err(w, r, err)
	}
}

// Health responds 200 "ok".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Text(w, r, resp.Data("ok")); err != nil {
		h.Err(w, r, err)
	}
}

// parse decodes r's query params into structPtr.
// When that fails, parse responds and returns false.
func (h *Handler) parse(w http.ResponseWriter, r *http.Request, structPtr any) bool {
	err := h.parser.ParseRequest(r, structPtr)
	if err == nil {
		return true
	}

	var verrs req.ValidationErrors
	if !errors.As(err, &verrs) {
		h.Err(w, r, err)
		return false
	}

	h.logger.Debug(err.Error(), &logger.LogContext{Request: r})
	if err := h.Json(w, r, resp.Code(http.StatusBadRequest), resp.Data(verrs)); err != nil {
		h.Err(w, r, err)
	}

	return false
}
