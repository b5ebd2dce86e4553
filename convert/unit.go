package convert

import (
	"fmt"
	"math"
)

// A Unit is one of the six measurement symbols this package converts between.
type Unit string

const (
	Liter     Unit = "L"
	Gallon    Unit = "gal"
	Kilometer Unit = "km"
	Mile      Unit = "mi"
	Kilogram  Unit = "kg"
	Pound     Unit = "lbs"
)

var (
	// all lists every Unit, pairs adjacent.
	all = [...]Unit{Liter, Gallon, Kilometer, Mile, Kilogram, Pound}

	pairs = map[Unit]Unit{
		Liter:     Gallon,
		Gallon:    Liter,
		Kilometer: Mile,
		Mile:      Kilometer,
		Kilogram:  Pound,
		Pound:     Kilogram,
	}

	names = map[Unit]string{
		Liter:     "liters",
		Gallon:    "gallons",
		Kilometer: "kilometers",
		Mile:      "miles",
		Kilogram:  "kilograms",
		Pound:     "pounds",
	}

	// rates converts each US unit to its metric pair.
	rates = map[Unit]float64{
		Gallon: 3.78541,
		Pound:  0.453592,
		Mile:   1.60934,
	}

	// symbols maps lower-cased symbols to their canonical Unit.
	symbols = func() map[string]Unit {
		m := make(map[string]Unit, len(all))
		for _, u := range all {
			m[lower(string(u))] = u
		}

		return m
	}()
)

// Units returns every Unit, each adjacent to its pair.
func Units() []Unit {
	out := make([]Unit, len(all))
	copy(out, all[:])

	return out
}

// PairedUnit returns the Unit on the other side of u's pairing.
func PairedUnit(u Unit) Unit { return u.Pair() }

// DisplayName returns the plural noun spelling out u.
func DisplayName(u Unit) string { return u.DisplayName() }

func (u Unit) String() string { return string(u) }

// Valid asserts u is one of the six recognized units.
func (u Unit) Valid() error {
	if _, ok := names[u]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, string(u))
	}

	return nil
}

// Pair returns the Unit u converts to.
// An invalid Unit pairs with the zero value.
func (u Unit) Pair() Unit { return pairs[u] }

// DisplayName returns the plural noun spelling out u, e.g., "kilometers".
// An invalid Unit has no name.
func (u Unit) DisplayName() string { return names[u] }

// IsMetric asserts whether u is the metric side of its pair.
func (u Unit) IsMetric() bool {
	_, us := rates[u]
	return !us && u.Valid() == nil
}

// Rate is the factor converting one u into its pair.
// Metric units report the reciprocal of their pair's rate.
// An invalid Unit reports NaN.
func (u Unit) Rate() float64 {
	if r, ok := rates[u]; ok {
		return r
	}

	if r, ok := rates[u.Pair()]; ok {
		return 1 / r
	}

	return math.NaN()
}
