// Command unitconv converts between paired metric and US units.
//
//	unitconv convert 3/2km
//	unitconv convert --json -- -2.5mi
//	echo 10gal | unitconv convert
//	unitconv units
//	unitconv serve
package main

import "github.com/xy-planning-network/unitconv/internal/cli"

func main() {
	cli.Execute()
}
