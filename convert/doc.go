/*
Package convert parses a combined numeric-and-unit string and converts it between paired units.

# Units

Six units are recognized, grouped into three pairs:

	L   <-> gal   (volume)
	km  <-> mi    (distance)
	kg  <-> lbs   (mass)

Input is case-insensitive; a [Unit] always carries its canonical casing,
so "l", "L" both parse to [Liter] and "KM", "Km", "km" to [Kilometer].

# Parsing

[ParseNumber] reads the numeric prefix of an input: a whole number, a decimal,
or a fraction whose numerator and denominator may each be decimal.
A bare unit such as "kg" reads as 1.
[ParseUnit] reads the alphabetic suffix anchored at the very end of the input.

The two are independent of one another.
[Parse] runs both and reports failures through a [*ParseError],
which distinguishes an invalid number, an invalid unit, or both:

	q, err := convert.Parse("1/2/3lbs")
	var pe *convert.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Message()) // invalid number
	}

# Converting

[Convert] multiplies a US unit by its rate to reach the metric unit
and divides a metric unit by its pair's rate to reach the US unit.
No rounding occurs in [Convert]; [NewConversion] rounds the converted number
to five decimal places and spells the result out as a sentence:

	c, _ := convert.NewConversion("3/2km")
	fmt.Println(c.String) // 1.5 kilometers converts to 0.93206 miles

All tables are read-only after package initialization,
so every function in this package is safe for concurrent use.
*/
package convert
