package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/irbis-tools/irbis2sql/helpers"
	"github.com/irbis-tools/irbis2sql/lookup"
	"github.com/irbis-tools/irbis2sql/pipeline"
	"github.com/irbis-tools/irbis2sql/sqlgen"
)

func newConvertCmd() *cobra.Command {
	var (
		inputFile      string
		outputFile     string
		databaseURL    string
		bbkCSV         string
		udcCSV         string
		csvEncoding    string
		heuristicsFile string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an IRBIS export to an insert dump",
		Long: `Convert an IRBIS catalog export into a PostgreSQL insert dump.

Classification codes are resolved against the bbk/udc reference tables,
loaded either from a live database (--database-url, or the DATABASE_URL
environment variable) or from the legacy worksheet CSVs (--bbk-csv,
--udc-csv). Without either, every code is skipped and counted.

Input defaults to stdin, output to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var input io.Reader = os.Stdin
			inputName := "stdin"
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return fmt.Errorf("opening input file: %w", err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("closing input file: %w", cerr)
					}
				}()
				input = f
				inputName = inputFile
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

			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			maps, err := loadLookups(cmd, databaseURL, bbkCSV, udcCSV, csvEncoding)
			if err != nil {
				return err
			}

			opts := &pipeline.Options{Lookups: maps}
			if heuristicsFile != "" {
				h, err := helpers.LoadPubHeuristics(heuristicsFile)
				if err != nil {
					return fmt.Errorf("loading heuristics: %w", err)
				}
				opts.Heuristics = h
			}

			res, err := pipeline.Run(input, opts)
			if err != nil {
				return fmt.Errorf("converting %s: %w", inputName, err)
			}

			if err := sqlgen.Serialize(output, res, &sqlgen.Options{SourceName: inputName}); err != nil {
				return fmt.Errorf("writing dump: %w", err)
			}

			slog.Info("conversion finished",
				"records", res.Stats.Records,
				"publishers", res.Stats.Publishers,
				"authors", res.Stats.Authors,
				"author_links", res.Stats.AuthorLinks,
				"bbk_resolved", res.Stats.BBK.Resolved,
				"bbk_skipped", res.Stats.BBK.Skipped,
				"udc_resolved", res.Stats.UDC.Resolved,
				"udc_skipped", res.Stats.UDC.Skipped,
				"copies", res.Stats.Copies.Accepted,
				"copy_duplicates", res.Stats.Copies.Duplicates,
				"copy_malformed", res.Stats.Copies.Malformed,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export file (default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output SQL file (default: stdout)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL for reference tables (default: $DATABASE_URL)")
	cmd.Flags().StringVar(&bbkCSV, "bbk-csv", "", "BBK reference worksheet CSV")
	cmd.Flags().StringVar(&udcCSV, "udc-csv", "", "UDC reference worksheet CSV")
	cmd.Flags().StringVar(&csvEncoding, "csv-encoding", "cp1251", "Reference CSV encoding (cp1251 or utf-8)")
	cmd.Flags().StringVar(&heuristicsFile, "heuristics", "", "YAML file overriding the publication-info heuristic tables")
	return cmd
}

// loadLookups prefers the live database; the worksheet CSVs are the
// offline fallback. Both absent yields empty maps and a warning.
func loadLookups(cmd *cobra.Command, databaseURL, bbkCSV, udcCSV, encoding string) (lookup.Maps, error) {
	if databaseURL != "" {
		pool, err := lookup.Connect(cmd.Context(), databaseURL)
		if err != nil {
			return lookup.Maps{}, err
		}
		defer pool.Close()

		maps, err := lookup.LoadMaps(cmd.Context(), pool)
		if err != nil {
			return lookup.Maps{}, err
		}
		slog.Info("loaded reference maps from database", "bbk", len(maps.BBK), "udc", len(maps.UDC))
		return maps, nil
	}

	var maps lookup.Maps
	if bbkCSV != "" {
		records, err := readRefCSV(bbkCSV, encoding, lookup.ReadBBKCSV)
		if err != nil {
			return lookup.Maps{}, fmt.Errorf("loading BBK CSV: %w", err)
		}
		maps.BBK = lookup.CodeMap(records)
	}
	if udcCSV != "" {
		records, err := readRefCSV(udcCSV, encoding, lookup.ReadUDCCSV)
		if err != nil {
			return lookup.Maps{}, fmt.Errorf("loading UDC CSV: %w", err)
		}
		maps.UDC = lookup.CodeMap(records)
	}
	if maps.BBK == nil && maps.UDC == nil {
		slog.Warn("no reference source configured, all classification codes will be skipped")
	}
	return maps, nil
}

func readRefCSV(path, encoding string, read func(io.Reader, string) ([]lookup.RefRecord, error)) ([]lookup.RefRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference CSV: %w", err)
	}
	defer f.Close()
	return read(f, encoding)
}
