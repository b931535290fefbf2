package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domain "cibil-mock-backend/internal/domain/cibil"
	"cibil-mock-backend/internal/usecase/cibil"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
)

// errRequiredFlagEmpty is returned when a required flag is blank.
var errRequiredFlagEmpty = errors.New("is required and cannot be empty")

// newRootCmd creates the root command; without a subcommand it serves HTTP.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cibil-api",
		Short:        "Mock CIBIL credit-report service",
		Long:         "Serves synthetic CIBIL credit-report history and a demo login over HTTP",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.AddCommand(newServeCmd(), newGenerateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Run the HTTP API until SIGINT or SIGTERM; configuration comes from the environment and .env",
		RunE:  runServe,
	}
}

// newGenerateCmd prints one synthesized report set without starting a server.
func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print synthetic CIBIL reports for a borrower",
		Long:  "Synthesize a CIBIL report set (or its summary) for a borrower and print it as JSON",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			borrower, err := cmd.Flags().GetString("borrower")
			if err != nil {
				return err
			}
			if borrower == "" {
				return fmt.Errorf("borrower %w", errRequiredFlagEmpty)
			}
			return nil
		},
		RunE: runGenerate,
	}
	generateCmd.Flags().StringP("borrower", "b", "", "Borrower id, e.g. "+domain.AlwaysHasHistoryBorrowerID)
	generateCmd.Flags().BoolP("summary", "s", false, "Print the aggregate summary instead of the records")
	generateCmd.Flags().Int64("seed", 0, "Random seed; 0 picks a fresh one")
	return generateCmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	borrower, _ := cmd.Flags().GetString("borrower") //nolint:errcheck
	summary, _ := cmd.Flags().GetBool("summary")     //nolint:errcheck
	seed, _ := cmd.Flags().GetInt64("seed")          //nolint:errcheck

	uc := cibil.NewUsecase(cibil.NewGenerator(gofakeit.New(seed), time.Now), nil)

	var out any
	if summary {
		out = uc.GetSummary(cmd.Context(), borrower)
	} else {
		out = uc.GetReports(cmd.Context(), borrower)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
