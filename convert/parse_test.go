package convert_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/unitconv"
	"github.com/xy-planning-network/unitconv/convert"
)

var validNumbers = []string{
	"937", "1", "0", "-1", "-913",
	"0.123", "-0.321", "-324.98",
	"1/2", "-1/2", "0/3",
	"1.3/3", "-1.3/3", "-13.3/233",
	"3/27.0", "-3/27.0", "-867/2.0",
	"10.231/23.7", "-10.231/23.7",
}

func TestParseNumberWhole(t *testing.T) {
	for i := 0; i < 20; i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			// Act
			actual, err := convert.ParseNumber(strconv.Itoa(i))

			// Assert
			require.Nil(t, err)
			require.Equal(t, float64(i), actual)
		})
	}
}

func TestParseNumber(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected float64
	}{
		{"Zero-Value", "", 1},
		{"Bare-Unit", "kg", 1},
		{"Bare-Unit-Upper", "GAL", 1},
		{"Bare-Unit-Liter", "l", 1},
		{"Decimal", "2.33", 2.33},
		{"Decimal-With-Unit", "2.33mi", 2.33},
		{"Leading-Point", ".5L", 0.5},
		{"Trailing-Point", "5.gal", 5},
		{"Negative", "-4km", -4},
		{"Negative-Leading-Point", "-.5kg", -0.5},
		{"Fraction", "12/24", 12.0 / 24.0},
		{"Fraction-With-Unit", "3/2km", 1.5},
		{"Decimal-Numerator", "1.23/6", 1.23 / 6},
		{"Decimal-Denominator", "6/1.23", 6 / 1.23},
		{"Same-Operands", "1.23/1.23", 1},
		{"Negative-Fraction", "-1/2lbs", -0.5},
		{"Empty-Denominator", "1/kg", 1},
		{"Zero-Numerator", "0/3", 0},
		{"Trailing-Garbage", "5kg12", 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := convert.ParseNumber(tc.input)

			// Assert
			require.Nil(t, err)
			require.InDelta(t, tc.expected, actual, 1e-12)
		})
	}
}

func TestParseNumberValidList(t *testing.T) {
	for _, n := range validNumbers {
		t.Run(n, func(t *testing.T) {
			_, err := convert.ParseNumber(n)
			require.Nil(t, err)
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"Double-Fraction", "1/2/3"},
		{"Trailing-Slash", "1/2/"},
		{"Double-Slash", "1//2"},
		{"Double-Fraction-With-Unit", "3/2/3lbs"},
		{"Divide-By-Zero", "1/0"},
		{"Zero-By-Zero", "0/0km"},
		{"Sign-Only", "-kg"},
		{"Point-Only", ".L"},
		{"Many-Points", "1.2.3mi"},
		{"Signed-Denominator-Missing-Numerator", "-/2"},
		{"Whitespace-Only", "   "},
		{"Leading-Space", " 5kg"},
		{"Letters-Only", "abc"},
		{"Letters-Before-Unit", "xkg"},
		{"Bare-Unit-Trailing-Space", "kg "},
		{"Overflow", strings.Repeat("9", 400)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := convert.ParseNumber(tc.input)

			// Assert
			require.ErrorIs(t, err, convert.ErrInvalidNumber)
			require.ErrorIs(t, err, unitconv.ErrNotValid)
			require.Zero(t, actual)
		})
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range convert.Units() {
		sym := u.String()
		variants := []string{
			strings.ToUpper(sym),
			strings.ToLower(sym),
			strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:]),
		}

		for _, n := range append(validNumbers, "") {
			for _, v := range variants {
				input := n + v
				t.Run(input, func(t *testing.T) {
					// Act
					actual, err := convert.ParseUnit(input)

					// Assert
					require.Nil(t, err)
					require.Equal(t, u, actual)
				})
			}
		}
	}
}

func TestParseUnitErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"Zero-Value", ""},
		{"Number-Only", "12"},
		{"Unknown-Letter", "0f"},
		{"Unknown-Word", "-1Opp"},
		{"Trailing-Space", "km "},
		{"Trailing-Digit", "5km2"},
		{"Prefixed", "5xkm"},
		{"Plural", "5liters"},
		{"Space-Between", "5k m"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := convert.ParseUnit(tc.input)

			// Assert
			require.ErrorIs(t, err, convert.ErrInvalidUnit)
			require.Zero(t, actual)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		// Act
		q, err := convert.Parse("3/2km")

		// Assert
		require.Nil(t, err)
		require.Equal(t, convert.Quantity{Value: 1.5, Unit: convert.Kilometer}, q)
	})

	for _, tc := range []struct {
		name    string
		input   string
		number  bool
		unit    bool
		message string
	}{
		{"Bad-Number", "1/2/3lbs", true, false, "invalid number"},
		{"Bad-Unit", "3/2kmz", false, true, "invalid unit"},
		{"Bad-Both", "1//2abc", true, true, "invalid number and unit"},
		{"Bad-Both-Letters", "abc", true, true, "invalid number and unit"},
		{"Bad-Both-Blank", "   ", true, true, "invalid number and unit"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			q, err := convert.Parse(tc.input)

			// Assert
			require.Zero(t, q)

			var pe *convert.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.input, pe.Input)
			require.Equal(t, tc.number, pe.Number != nil)
			require.Equal(t, tc.unit, pe.Unit != nil)
			require.Equal(t, tc.number, errors.Is(err, convert.ErrInvalidNumber))
			require.Equal(t, tc.unit, errors.Is(err, convert.ErrInvalidUnit))
			require.Equal(t, tc.message, pe.Message())
			require.Equal(t, tc.message, convert.Message(err))
			require.Contains(t, err.Error(), tc.message)
		})
	}

	t.Run("Unit-Survives-Bad-Number", func(t *testing.T) {
		// Act
		_, err := convert.Parse("1/2/3kg")

		// Assert
		var pe *convert.ParseError
		require.ErrorAs(t, err, &pe)
		require.Nil(t, pe.Unit)

		u, err := convert.ParseUnit("1/2/3kg")
		require.Nil(t, err)
		require.Equal(t, convert.Kilogram, u)
	})
}

func TestMessage(t *testing.T) {
	for _, tc := range []struct {
		name     string
		err      error
		expected string
	}{
		{"Nil", nil, ""},
		{"Number", convert.ErrInvalidNumber, "invalid number"},
		{"Unit", convert.ErrInvalidUnit, "invalid unit"},
		{"Joined", errors.Join(convert.ErrInvalidUnit, convert.ErrInvalidNumber), "invalid number and unit"},
		{"Other", errors.New("oops"), "oops"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, convert.Message(tc.err))
		})
	}
}
