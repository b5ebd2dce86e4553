package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// numericPrefix matches a leading sign, digit or decimal point
	// followed by any run of digits, decimal points and slashes.
	numericPrefix = regexp.MustCompile(`^[-0-9.][0-9./]*`)

	// unitSuffix matches the run of letters ending the input.
	unitSuffix = regexp.MustCompile(`[a-z]+$`)
)

// A Quantity is a parsed number and the Unit it measures.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Parse reads both the number and the unit out of input.
//
// Both halves are always parsed.
// If either fails, Parse returns a *ParseError carrying each failure.
func Parse(input string) (Quantity, error) {
	num, numErr := ParseNumber(input)
	unit, unitErr := ParseUnit(input)
	if numErr != nil || unitErr != nil {
		return Quantity{}, &ParseError{Input: input, Number: numErr, Unit: unitErr}
	}

	return Quantity{Value: num, Unit: unit}, nil
}

// ParseNumber reads the numeric prefix of input.
//
// The empty string reads as 1,
// as does input that is nothing but a unit, e.g., "kg".
// A fraction may contain only one slash.
// A missing denominator, as in "1/", reads as 1.
//
// ParseNumber returns ErrInvalidNumber for malformed fractions,
// operands that are not numbers, non-finite results,
// and input that neither starts with a number nor is a bare unit, e.g., "abc".
func ParseNumber(input string) (float64, error) {
	if input == "" {
		return 1, nil
	}

	token := numericPrefix.FindString(input)
	if token == "" {
		if _, ok := symbols[lower(input)]; ok {
			return 1, nil
		}

		return 0, fmt.Errorf("%w: %q has no number", ErrInvalidNumber, input)
	}

	parts := strings.Split(token, "/")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q has more than one '/'", ErrInvalidNumber, token)
	}

	num, err := parseOperand(parts[0])
	if err != nil {
		return 0, err
	}

	den := 1.0
	if len(parts) == 2 && parts[1] != "" {
		if den, err = parseOperand(parts[1]); err != nil {
			return 0, err
		}
	}

	val := num / den
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, token)
	}

	return val, nil
}

// ParseUnit reads the unit ending input, ignoring case.
//
// The unit must be the last thing in input; trailing whitespace invalidates it.
// ParseUnit returns ErrInvalidUnit when no recognized unit ends input.
func ParseUnit(input string) (Unit, error) {
	suffix := unitSuffix.FindString(lower(input))
	if suffix == "" {
		return "", fmt.Errorf("%w: no unit ends %q", ErrInvalidUnit, input)
	}

	u, ok := symbols[suffix]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, suffix)
	}

	return u, nil
}

func parseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return f, nil
}

// lower normalizes s for looking up symbols.
// A cases.Caser holds state, so one is made per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
