package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/edgeconv/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a convert configuration file without converting anything.

Checks:
  - YAML syntax
  - progress_every is positive
  - log_level, log_format and summary_format values

Environment overrides (EDGECONV_*) are applied before validation.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  progress_every: %d\n", cfg.ProgressEvery)
	fmt.Fprintf(w, "  log_level:      %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "  log_format:     %s\n", cfg.LogFormat)
	fmt.Fprintf(w, "  summary_format: %s\n", cfg.SummaryFormat)

	return nil
}
