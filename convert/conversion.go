package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReturnPlaces is the number of decimal places a Conversion rounds its result to.
const ReturnPlaces = 5

// A Conversion is the outcome of converting a raw input into its paired unit,
// ready for displaying to an end user.
type Conversion struct {
	InitNum    float64 `json:"initNum"`
	InitUnit   Unit    `json:"initUnit"`
	ReturnNum  float64 `json:"returnNum"`
	ReturnUnit Unit    `json:"returnUnit"`
	String     string  `json:"string"`
}

// NewConversion parses input, converts it, and spells out the result.
//
// The converted number is rounded to ReturnPlaces.
// Any parse failure returns a *ParseError.
func NewConversion(input string) (Conversion, error) {
	q, err := Parse(input)
	if err != nil {
		return Conversion{}, err
	}

	c := Conversion{
		InitNum:    q.Value,
		InitUnit:   q.Unit,
		ReturnNum:  Round(Convert(q.Value, q.Unit), ReturnPlaces),
		ReturnUnit: q.Unit.Pair(),
	}

	c.String = fmt.Sprintf(
		"%s %s converts to %s %s",
		FormatNumber(c.InitNum),
		c.InitUnit.DisplayName(),
		FormatNumber(c.ReturnNum),
		c.ReturnUnit.DisplayName(),
	)

	return c, nil
}

// Round rounds v to the given number of decimal places.
// Non-finite values are returned as is.
func Round(v float64, places int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}

	return r
}

// FormatNumber renders v in its shortest decimal form, e.g., "1", "1.5", "0.93206".
//
// Magnitudes at or above 1e21 or below 1e-6 use exponent notation, e.g., "1e+21", "1e-7".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
