package resp

import (
	"fmt"
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
	err  error
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
//
// Used with Responder.Json and Responder.Text.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
//
// A status code set by Code is kept when it is already a 4xx or 5xx.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		r.err = e
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		if r.code >= http.StatusBadRequest {
			return nil
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Header sets the response header key to val.
func Header(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.w == nil {
			return fmt.Errorf("%w: no http.ResponseWriter", ErrMissingData)
		}

		r.w.Header().Set(key, val)
		return nil
	}
}
