// Package cli implements the unitconv command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/unitconv/internal/buildinfo"
	"github.com/xy-planning-network/unitconv/ranger"
)

// errFailed marks a command that already reported its failure to the user.
var errFailed = errors.New("failed")

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}

		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert between liters and gallons, kilometers and miles, kilograms and pounds",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.AddCommand(convertCmd(), unitsCmd(), serveCmd(ranger.New))

	return cmd
}
