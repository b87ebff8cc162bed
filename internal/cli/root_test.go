package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/edgeconv/internal/cli/commands"
	"github.com/ccollicutt/edgeconv/pkg/config"
	"github.com/ccollicutt/edgeconv/pkg/output"
)

func newTestRoot() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))
	return input, filepath.Join(dir, "edges.txt")
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"only-input.csv"}} {
		cmd, stdout, _ := newTestRoot()
		code := run(context.Background(), cmd, args)

		assert.Equal(t, 0, code)
		assert.Equal(t, commands.UsageMessage+"\n", stdout.String())
		_, err := os.Stat("only-input.csv")
		assert.True(t, os.IsNotExist(err), "no file should be created")
	}
}

func TestRun_Convert(t *testing.T) {
	input, out := writeInput(t, "source,target,time\n"+
		"a,b,2021-06-15 12:00:00\n"+
		",b,2021-06-15 12:00:00\n"+
		`"c","d","2021-06-15 12:00:01"`+"\n"+
		"e,f,1969-12-31 23:59:59\n")

	cmd, stdout, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{input, out})
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a b 1623758400\nc d 1623758401\n", string(data))

	assert.Contains(t, stdout.String(), commands.CompletionMessage)
	assert.Contains(t, stdout.String(), "Lines written:   2")
	assert.Contains(t, stderr.String(), "invalid line")
}

func TestRun_Convert_JSONSummary(t *testing.T) {
	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\n")

	cmd, stdout, _ := newTestRoot()
	code := run(context.Background(), cmd, []string{"--summary", "json", input, out})
	require.Equal(t, 0, code)

	body := bytes.TrimPrefix(stdout.Bytes(), []byte(commands.CompletionMessage+"\n"))
	var report output.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 1, report.Summary.LinesWritten)
	assert.Equal(t, out, report.Metadata.Output)
}

func TestRun_Convert_QuietSuppressesDiagnostics(t *testing.T) {
	input, out := writeInput(t, "h\n,b,2021-06-15 12:00:00\n")

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{"-q", input, out})
	require.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRun_Convert_BadTimestamp(t *testing.T) {
	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\na,b,not-a-date\nc,d,2021-06-15 12:00:00\n")

	cmd, stdout, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{input, out})

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stderr.String(), "not-a-date")
	assert.NotContains(t, stdout.String(), commands.CompletionMessage)

	// Rows before the failure stay in the output file.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a b 1623758400\n", string(data))
}

func TestRun_Convert_MalformedRow(t *testing.T) {
	input, out := writeInput(t, "h\na,b\n")

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{input, out})

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "malformed row")
}

func TestRun_Convert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "edges.txt")

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{filepath.Join(dir, "missing.csv"), out})

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "opening input file")
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output should not be created when input is missing")
}

func TestRun_Convert_ConfigFile(t *testing.T) {
	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\nc,d,2021-06-15 12:00:00\n")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("progress_every: 1\nlog_format: json\n"), 0644))

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{"--config", cfgPath, input, out})
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	assert.Contains(t, stderr.String(), `"msg":"processing line"`)
}

func TestRun_Convert_InvalidConfig(t *testing.T) {
	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\n")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("progress_every: -1\n"), 0644))

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{"--config", cfgPath, input, out})

	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr.String(), "progress_every")
}

func TestRun_Convert_EnvFile(t *testing.T) {
	t.Setenv(config.EnvProgressEvery, "")
	require.NoError(t, os.Unsetenv(config.EnvProgressEvery))

	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\n")
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(config.EnvProgressEvery+"=1\n"), 0644))

	cmd, _, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{"--env-file", envPath, input, out})
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	assert.Contains(t, stderr.String(), "processing line")
}

func TestRun_Version(t *testing.T) {
	cmd, stdout, _ := newTestRoot()
	code := run(context.Background(), cmd, []string{"version"})

	assert.Equal(t, 0, code)
	assert.Equal(t, "convert "+commands.Version+"\n", stdout.String())
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"diagnose", "validate", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestRun_Convert_InputNamedLikeSubcommand(t *testing.T) {
	for _, name := range []string{"diagnose", "validate", "version", "help", "completion"} {
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			require.NoError(t, os.WriteFile(name, []byte("h\na,b,2021-06-15 12:00:00\n"), 0644))

			cmd, stdout, stderr := newTestRoot()
			code := run(context.Background(), cmd, []string{"-q", name, name + ".out"})
			require.Equal(t, 0, code, "stderr: %s", stderr.String())

			data, err := os.ReadFile(name + ".out")
			require.NoError(t, err)
			assert.Equal(t, "a b 1623758400\n", string(data))
			assert.Contains(t, stdout.String(), commands.CompletionMessage)
		})
	}
}

func TestRun_Convert_FlagValueBeforeSubcommandName(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("diagnose", []byte("h\na,b,2021-06-15 12:00:00\n"), 0644))

	cmd, stdout, stderr := newTestRoot()
	code := run(context.Background(), cmd, []string{"--summary", "json", "diagnose", "edges.txt"})
	require.Equal(t, 0, code, "stderr: %s", stderr.String())

	data, err := os.ReadFile("edges.txt")
	require.NoError(t, err)
	assert.Equal(t, "a b 1623758400\n", string(data))
	assert.Contains(t, stdout.String(), `"lines_written": 1`)
}

func TestRun_SubcommandStillDispatches(t *testing.T) {
	// "diagnose" is a subcommand here: no file by that name exists.
	chdir(t, t.TempDir())
	input, _ := writeInput(t, "source,target,time\na,b,2021-06-15 12:00:00\n")

	cmd, stdout, _ := newTestRoot()
	code := run(context.Background(), cmd, []string{"diagnose", input})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "=== Edge File Diagnostics ===")
}

func TestRun_Convert_Cancelled(t *testing.T) {
	input, out := writeInput(t, "h\na,b,2021-06-15 12:00:00\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd, stdout, stderr := newTestRoot()
	code := run(ctx, cmd, []string{input, out})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), context.Canceled.Error())
	assert.NotContains(t, stdout.String(), commands.CompletionMessage)
}

func TestPositionalArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"plain", []string{"in.csv", "out.txt"}, []string{"in.csv", "out.txt"}},
		{"value flag", []string{"--summary", "json", "in.csv", "out.txt"}, []string{"in.csv", "out.txt"}},
		{"inline value", []string{"--config=c.yaml", "in.csv", "out.txt"}, []string{"in.csv", "out.txt"}},
		{"bool shorthand", []string{"-q", "in.csv", "out.txt"}, []string{"in.csv", "out.txt"}},
		{"terminator", []string{"-q", "--", "-in.csv", "out.txt"}, []string{"-in.csv", "out.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positionalArgs(NewRootCommand(), tt.args))
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
