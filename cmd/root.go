// Package cmd provides the CLI commands for irbis2sql.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	setupLogger()

	root := &cobra.Command{
		Use:   "irbis2sql",
		Short: "Convert IRBIS catalog exports to PostgreSQL insert dumps",
		Long: `irbis2sql converts a textual IRBIS catalog export into a normalized
PostgreSQL insert dump: books, publication places, deduplicated authors and
publishers, classification-code links, and per-copy inventory rows.

Examples:
  irbis2sql convert -i irbis_data.txt -o inserts.sql --database-url $DATABASE_URL
  irbis2sql convert -i irbis_data.txt --bbk-csv bbk.csv --udc-csv udc.csv
  cat irbis_data.txt | irbis2sql convert > inserts.sql
  irbis2sql refs bbk -i bbk.csv -o bbk_inserts.sql`,
	}

	root.AddCommand(newConvertCmd())
	root.AddCommand(newRefsCmd())
	return root
}
