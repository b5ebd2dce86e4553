package convert_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/unitconv/convert"
)

func TestNewConversion(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected convert.Conversion
	}{
		{
			"Fraction-km",
			"3/2km",
			convert.Conversion{
				InitNum:    1.5,
				InitUnit:   convert.Kilometer,
				ReturnNum:  0.93206,
				ReturnUnit: convert.Mile,
				String:     "1.5 kilometers converts to 0.93206 miles",
			},
		},
		{
			"Bare-kg",
			"kg",
			convert.Conversion{
				InitNum:    1,
				InitUnit:   convert.Kilogram,
				ReturnNum:  2.20462,
				ReturnUnit: convert.Pound,
				String:     "1 kilograms converts to 2.20462 pounds",
			},
		},
		{
			"Lowercase-Liter",
			"10l",
			convert.Conversion{
				InitNum:    10,
				InitUnit:   convert.Liter,
				ReturnNum:  2.64172,
				ReturnUnit: convert.Gallon,
				String:     "10 liters converts to 2.64172 gallons",
			},
		},
		{
			"Gallon",
			"1gal",
			convert.Conversion{
				InitNum:    1,
				InitUnit:   convert.Gallon,
				ReturnNum:  3.78541,
				ReturnUnit: convert.Liter,
				String:     "1 gallons converts to 3.78541 liters",
			},
		},
		{
			"Negative-Decimal-Miles",
			"-2.5MI",
			convert.Conversion{
				InitNum:    -2.5,
				InitUnit:   convert.Mile,
				ReturnNum:  -4.02335,
				ReturnUnit: convert.Kilometer,
				String:     "-2.5 miles converts to -4.02335 kilometers",
			},
		},
		{
			"Zero-Pounds",
			"0lbs",
			convert.Conversion{
				InitNum:    0,
				InitUnit:   convert.Pound,
				ReturnNum:  0,
				ReturnUnit: convert.Kilogram,
				String:     "0 pounds converts to 0 kilograms",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := convert.NewConversion(tc.input)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestNewConversionErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		message string
	}{
		{"Bad-Number", "1/2/3lbs", "invalid number"},
		{"Bad-Unit", "32g", "invalid unit"},
		{"Bad-Both", "abc", "invalid number and unit"},
		{"Bad-Both-Fraction", "3/7.2/4kilomegagram", "invalid number and unit"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := convert.NewConversion(tc.input)

			// Assert
			require.Zero(t, actual)

			var pe *convert.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.message, pe.Message())
		})
	}
}

func TestConversionJSON(t *testing.T) {
	// Arrange
	c, err := convert.NewConversion("3/2km")
	require.Nil(t, err)

	// Act
	b, err := json.Marshal(c)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{
		"initNum": 1.5,
		"initUnit": "km",
		"returnNum": 0.93206,
		"returnUnit": "mi",
		"string": "1.5 kilometers converts to 0.93206 miles"
	}`, string(b))
}

func TestRound(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    float64
		places   int
		expected float64
	}{
		{"Zero", 0, 5, 0},
		{"Already-Short", 1.5, 5, 1.5},
		{"Up", 0.9320591049747101, 5, 0.93206},
		{"Down", 2.2046244201837775, 5, 2.20462},
		{"Negative", -4.0233500000000003, 5, -4.02335},
		{"Whole", 2.6, 0, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, convert.Round(tc.input, tc.places))
		})
	}

	require.True(t, math.IsInf(convert.Round(math.Inf(1), 5), 1))
	require.True(t, math.IsNaN(convert.Round(math.NaN(), 5)))
}

func TestFormatNumber(t *testing.T) {
	for _, tc := range []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{1.5, "1.5"},
		{-2.5, "-2.5"},
		{0.93206, "0.93206"},
		{937, "937"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{0.000001, "0.000001"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, convert.FormatNumber(tc.input))
		})
	}
}
