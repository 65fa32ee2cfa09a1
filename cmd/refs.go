package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/irbis-tools/irbis2sql/lookup"
	"github.com/irbis-tools/irbis2sql/sqlgen"
)

func newRefsCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		encoding   string
	)

	cmd := &cobra.Command{
		Use:   "refs <bbk|udc>",
		Short: "Generate reference-table inserts from a worksheet CSV",
		Long: `Generate insert statements for the bbk or udc reference table from the
legacy worksheet CSV export. Multi-row descriptions are glued back together
and rows without a description are dropped.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{sqlgen.RefBBK, sqlgen.RefUDC},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			system := args[0]

			var input io.Reader = os.Stdin
			inputName := "stdin"
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return fmt.Errorf("opening input file: %w", err)
				}
				defer f.Close()
				input = f
				inputName = inputFile
			}

			var records []lookup.RefRecord
			switch system {
			case sqlgen.RefBBK:
				records, err = lookup.ReadBBKCSV(input, encoding)
			case sqlgen.RefUDC:
				records, err = lookup.ReadUDCCSV(input, encoding)
			default:
				return fmt.Errorf("unknown reference system %q", system)
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputName, err)
			}
			if len(records) == 0 {
				return fmt.Errorf("no usable records in %s", inputName)
			}

			var output io.Writer = os.Stdout
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("closing output file: %w", cerr)
					}
				}()
				output = f
			}

			if err := sqlgen.SerializeRefs(output, system, records, inputName); err != nil {
				return fmt.Errorf("writing reference dump: %w", err)
			}

			slog.Info("reference dump written", "system", system, "records", len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Reference CSV file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output SQL file (default: stdout)")
	cmd.Flags().StringVar(&encoding, "encoding", "cp1251", "CSV encoding (cp1251 or utf-8)")
	return cmd
}
