package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/unitconv/convert"
)

func convertCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert a number and unit, like 3/2km, into its paired unit",
		Long: `Convert a number and unit, like 3/2km, into its paired unit.

Without an input, every line read from stdin is converted.
An input starting with "-" must follow "--".`,
		Example: "  unitconv convert 3/2km\n  unitconv convert --json -- -2.5mi\n  echo 10gal | unitconv convert",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			var failed bool
			for _, input := range inputs {
				ok, err := writeConversion(cmd.OutOrStdout(), input, asJSON)
				if err != nil {
					return err
				}

				failed = failed || !ok
			}

			if failed {
				return errFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print each conversion as a JSON object")
	return cmd
}

// writeConversion writes the conversion of input to w,
// reporting whether input converted.
func writeConversion(w io.Writer, input string, asJSON bool) (bool, error) {
	c, err := convert.NewConversion(input)
	if !asJSON {
		msg := c.String
		if err != nil {
			msg = convert.Message(err)
		}

		_, werr := fmt.Fprintln(w, msg)
		return err == nil, werr
	}

	var obj gojay.MarshalerJSONObject = (*conversionJSON)(&c)
	if err != nil {
		obj = &failureJSON{input: input, msg: convert.Message(err)}
	}

	if werr := encodeLine(w, func(enc *gojay.Encoder) error { return enc.EncodeObject(obj) }); werr != nil {
		return false, werr
	}

	return err == nil, nil
}

// encodeLine runs fn with an encoder writing to w, then ends the line.
func encodeLine(w io.Writer, fn func(*gojay.Encoder) error) error {
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()

	if err := fn(enc); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// readLines reads every non-blank line of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return lines, nil
}
