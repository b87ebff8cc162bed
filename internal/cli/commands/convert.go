package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/edgeconv/pkg/config"
	"github.com/ccollicutt/edgeconv/pkg/converter"
	"github.com/ccollicutt/edgeconv/pkg/logging"
	"github.com/ccollicutt/edgeconv/pkg/output"
)

// UsageMessage is printed when input and output paths are missing.
const UsageMessage = "Usage: convert <input_file> <output_file>"

// CompletionMessage is printed after a successful conversion.
const CompletionMessage = "Conversion completed successfully."

// ConvertOptions holds command-line options for a conversion run.
type ConvertOptions struct {
	ConfigPath string
	EnvFile    string
	Summary    string
	LogLevel   string
	LogFormat  string
	Quiet      bool
}

// AddConvertFlags registers the conversion flags on cmd.
func AddConvertFlags(cmd *cobra.Command, opts *ConvertOptions) {
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML run configuration file")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file loaded before the configuration")
	cmd.Flags().StringVar(&opts.Summary, "summary", config.DefaultSummaryFormat, "Completion summary format (text|json)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "Diagnostic log format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress progress and invalid-line diagnostics")
}

// RunConvert converts args[0] into args[1].
// With fewer than two arguments it prints the usage message and does nothing else.
func RunConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), UsageMessage)
		return nil
	}
	inputPath, outputPath := args[0], args[1]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadRunConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Quiet:  opts.Quiet,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	formatter, err := output.NewFormatter(cfg.SummaryFormat, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	conv := converter.New(
		converter.WithLogger(logger),
		converter.WithProgressEvery(cfg.ProgressEvery),
		converter.WithInputName(inputPath),
	)

	stats, err := conv.Convert(ctx, in, out)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing output file: %w", closeErr)
	}

	fmt.Fprintln(cmd.OutOrStdout(), CompletionMessage)

	report := output.NewReport(stats, inputPath, outputPath, time.Now())
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting %s summary: %w", formatter.Name(), err)
	}

	return nil
}

// loadRunConfig resolves the run configuration: env file, then config file
// or defaults with environment overrides, then explicitly set flags.
func loadRunConfig(ctx context.Context, cmd *cobra.Command, opts *ConvertOptions) (*config.Config, error) {
	if opts.EnvFile != "" {
		if err := config.LoadEnvFile(opts.EnvFile); err != nil {
			return nil, err
		}
	}

	var cfg *config.Config
	if opts.ConfigPath != "" {
		loaded, err := config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
		cfg.ApplyEnvironmentOverrides()
	}

	flags := cmd.Flags()
	if flags.Changed("summary") {
		cfg.SummaryFormat = opts.Summary
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.LogFormat
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
