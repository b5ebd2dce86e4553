package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/unitconv/convert"
)

func unitsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the supported units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			units := convert.Units()
			if asJSON {
				return encodeLine(cmd.OutOrStdout(), func(enc *gojay.Encoder) error {
					return enc.EncodeArray(unitsJSON(units))
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIT\tNAME\tPAIR\tRATE\tSYSTEM")
			for _, u := range units {
				rate := convert.FormatNumber(convert.Round(u.Rate(), convert.ReturnPlaces))
				system := "us"
				if u.IsMetric() {
					system = "metric"
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u, u.DisplayName(), u.Pair(), rate, system)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the units as a JSON array")
	return cmd
}
