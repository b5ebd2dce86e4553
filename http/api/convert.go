package api

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/unitconv/convert"
	"github.com/xy-planning-network/unitconv/http/resp"
	"github.com/xy-planning-network/unitconv/logger"
)

// MaxInputLen caps the length of the input query param.
// The max rule on ConvertRequest.Input must match it.
const MaxInputLen = 1024

// A ConvertRequest is the query params Convert accepts.
type ConvertRequest struct {
	Input string `schema:"input" validate:"max=1024"`
}

// Convert responds with the Conversion of the input query param.
//
// An input that does not parse is not a client error:
// Convert responds 200 with its plain text description.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var cr ConvertRequest
	if !h.parse(w, r, &cr) {
		return
	}

	c, err := convert.NewConversion(cr.Input)
	var pe *convert.ParseError
	switch {
	case errors.As(err, &pe):
		h.logger.Debug(pe.Error(), &logger.LogContext{Request: r, Data: map[string]any{"input": cr.Input}})
		err = h.Text(w, r, resp.Data(pe.Message()))
	case err != nil:
		h.Err(w, r, err)
		return
	default:
		err = h.Json(w, r, resp.Data(c))
	}

	if err != nil {
		h.Err(w, r, err)
	}
}
