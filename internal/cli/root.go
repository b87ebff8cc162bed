// Package cli provides the command-line interface for convert.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/edgeconv/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
// SIGINT and SIGTERM cancel the run between lines; output written so far is flushed.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, NewRootCommand(), os.Args[1:])
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	// An input file that happens to share a subcommand name is still converted.
	positional := positionalArgs(rootCmd, args)
	if len(positional) >= 2 && isBuiltinCommand(rootCmd, positional[0]) && isRegularFile(positional[0]) {
		rootCmd.ResetCommands()
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	// Also check for special commands like help and completion
	return name == "help" || name == "completion"
}

// positionalArgs drops root flags and their values from args.
func positionalArgs(rootCmd *cobra.Command, args []string) []string {
	flags := rootCmd.Flags()
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(positional, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			if strings.Contains(arg, "=") {
				continue
			}
			if f := flags.Lookup(arg[2:]); f != nil && f.NoOptDefVal == "" {
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if len(arg) != 2 {
				continue
			}
			if f := flags.ShorthandLookup(arg[1:]); f != nil && f.NoOptDefVal == "" {
				i++
			}
		default:
			positional = append(positional, arg)
		}
	}
	return positional
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &commands.ConvertOptions{}

	rootCmd := &cobra.Command{
		Use:   "convert <input_file> <output_file>",
		Short: "Convert CSV temporal edges to space-separated edges with Unix timestamps",
		Long: `convert reads a comma-separated file of temporal edges and writes one
"vertex1 vertex2 unix_timestamp" line per valid row.

Input rows look like:
  vertex1,vertex2,"YYYY-MM-DD HH:MM:SS"

The first line is a header and is always discarded. Rows with an empty vertex
or a timestamp before 1970-01-01 are skipped. A row with fewer than three
fields or an unparseable timestamp aborts the run.

An input file named like a subcommand (for example "diagnose") is converted
when it exists and an output path follows it.

Timestamps are read as UTC.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunConvert(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddConvertFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
