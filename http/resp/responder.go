package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/xy-planning-network/unitconv/logger"
)

// responderFrames skips the Err Fn, do and Responder.Err
// so logs report the handler calling the Responder.
const responderFrames = 3

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Err
//	Json
//	Text
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// JSON indent; empty means compact
	indent string

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New(nil)
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// The default status code is 500; pass Code to use another 4xx or 5xx.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// Json responds with the value set by Data encoded as JSON, setting appropriate headers.
// The value is written as is, without an enclosing envelope.
//
// The default status code is 200.
// Json writes nothing when it returns an error; respond with Err.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	enc := json.NewEncoder(b)
	enc.SetIndent("", doer.indent)
	if err := enc.Encode(rr.data); err != nil {
		return err
	}

	doer.write(w, rr, "application/json; charset=UTF-8", b)
	return nil
}

// Text responds with the value set by Data formatted as plain text.
//
// The default status code is 200.
// Text writes nothing when it returns an error; respond with Err.
func (doer *Responder) Text(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	switch d := rr.data.(type) {
	case nil:
	case []byte:
		b.Write(d)
	case string:
		b.WriteString(d)
	default:
		fmt.Fprint(b, d)
	}

	doer.write(w, rr, "text/plain; charset=UTF-8", b)
	return nil
}

// write sets the Content-Type and status code before flushing b into w.
// Once the header is written no other response can follow, so a failed flush is only logged.
func (doer *Responder) write(w http.ResponseWriter, rr *Response, contentType string, b io.WriterTo) {
	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		doer.logger.Warn(err.Error(), newLogContext(rr.r, err, nil))
	}
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
// do nonetheless retries options that return errors until none do or
// a set of options unable to not return errors is reached.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}

	redos := make([]Fn, 0)
	for _, opt := range opts {
		if err := r.Context().Err(); err != nil {
			return resp, fmt.Errorf("%w: %s", ErrDone, err)
		}

		if err := opt(*doer, resp); err != nil {
			redos = append(redos, opt)
		}
	}

	// Stop once a pass leaves the same number of failing options.
	for n := -1; len(redos) != 0 && len(redos) != n; {
		n = len(redos)
		redos = doer.redo(resp, redos...)
	}

	var err error
	for _, opt := range redos {
		if nested := opt(*doer, resp); nested != nil {
			if err == nil {
				err = nested
				continue
			}

			err = fmt.Errorf("%w: %s", nested, err)
		}
	}

	return resp, err
}

// redo applies as many Options as it can, returning those Options that continue to throw an error.
func (doer *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*doer, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}
