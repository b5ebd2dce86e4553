package resp

import (
	"github.com/xy-planning-network/unitconv/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, logger.New(nil) is used.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithJSONIndent sets the indent JSON responses use.
// By default, JSON responses are compact.
func WithJSONIndent(indent string) ResponderOptFn {
	return func(d *Responder) {
		d.indent = indent
	}
}
