package convert

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/unitconv"
)

var (
	ErrInvalidNumber = fmt.Errorf("%w number", unitconv.ErrNotValid)
	ErrInvalidUnit   = fmt.Errorf("%w unit", unitconv.ErrNotValid)
)

const (
	msgInvalidBoth   = "invalid number and unit"
	msgInvalidNumber = "invalid number"
	msgInvalidUnit   = "invalid unit"
)

// A ParseError reports which halves of an input failed to parse.
// Number and Unit are set independently; either or both may be non-nil.
//
// errors.Is matches a ParseError against ErrInvalidNumber and ErrInvalidUnit
// according to which halves failed.
type ParseError struct {
	Input  string
	Number error
	Unit   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message(), e.Input)
}

// Message is the user-facing description of the failure.
func (e *ParseError) Message() string {
	switch {
	case e.Number != nil && e.Unit != nil:
		return msgInvalidBoth
	case e.Number != nil:
		return msgInvalidNumber
	case e.Unit != nil:
		return msgInvalidUnit
	default:
		return ""
	}
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Number != nil {
		errs = append(errs, e.Number)
	}

	if e.Unit != nil {
		errs = append(errs, e.Unit)
	}

	return errs
}

// Message maps err to a user-facing description.
// A *ParseError anywhere in err's tree supplies its own Message;
// otherwise the sentinels are checked directly.
func Message(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Message()
	}

	num := errors.Is(err, ErrInvalidNumber)
	unit := errors.Is(err, ErrInvalidUnit)
	switch {
	case num && unit:
		return msgInvalidBoth
	case num:
		return msgInvalidNumber
	case unit:
		return msgInvalidUnit
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
