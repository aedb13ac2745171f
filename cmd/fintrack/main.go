package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fintrack/internal/categorizer"
	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/services"
)

var (
	exportFrom string
	exportTo   string
)

func main() {
	cli.LoadEnvFile()
	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)

	rootCmd := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal finance tracker",
		Long:  `Track expenses, income and category budgets in a local SQLite ledger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup := buildService(logger, cfg)
			defer cleanup()
			runMenu(cmd.Context(), svc)
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export expenses to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := parseRange(exportFrom, exportTo)
			if err != nil {
				return err
			}

			svc, cleanup := buildService(logger, cfg)
			defer cleanup()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()

			n, err := svc.ExportCSV(cmd.Context(), rng, f)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d expenses to %s\n", n, args[0])
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildService wires store and categorizer into the ledger service. The
// returned cleanup closes the store.
func buildService(logger *slog.Logger, cfg *config.Config) (*services.LedgerService, func()) {
	cli.ValidateConfig(logger, cfg)
	repo := cli.InitStore(logger, cfg.DBPath)

	cat := categorizer.New(categorizer.NewFileStore(cfg.ModelPath))
	if status := cat.Status(); status.Retrained {
		logger.Info("Categorizer trained from bundled examples", "persisted", status.SaveErr == nil)
	}

	svc := services.NewLedgerService(repo, cat)
	return svc, func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close ledger store", "error", err)
		}
	}
}

func parseRange(from, to string) (core.DateRange, error) {
	var rng core.DateRange
	if from != "" {
		d, err := core.ParseDate(from)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("invalid --from date %q", from)
		}
		rng.Start = d
	}
	if to != "" {
		d, err := core.ParseDate(to)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("invalid --to date %q", to)
		}
		rng.End = d
	}
	return rng, nil
}
