package cmd

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pipeshell/psh/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	command, colorMode, reportSession = "", config.ColorAuto, ""

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_singleLine(t *testing.T) {
	for _, tool := range []string{"echo", "tr"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s isn't available: %v", tool, err)
		}
	}

	out, err := runRoot(t, "--config", t.TempDir(), "-c", "echo hello | tr a-z A-Z")

	require.NoError(t, err)
	assert.Contains(t, out, "did you run init?")
	assert.Contains(t, out, "HELLO\n")
}

func TestRoot_invalidColor(t *testing.T) {
	_, err := runRoot(t, "--config", t.TempDir(), "--color", "sometimes", "-c", "exit")

	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	out, err := runRoot(t, "builtins")

	require.NoError(t, err)
	assert.Equal(t, "cd\nclear\nexit\n", out)
}

func TestEventsReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "psh")

	_, err := runRoot(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, config.ConfigurationName))

	_, err = runRoot(t, "--config", dir, "-c", "cd /does-not-exist")
	require.NoError(t, err)
	_, err = runRoot(t, "--config", dir, "-c", "psh-missing-command-for-test")
	require.NoError(t, err)

	out, err := runRoot(t, "events", "report", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "log_entries: 2")
	assert.Contains(t, out, "psh-missing-command-for-test")
	assert.Contains(t, out, "builtin_command_report")

	out, err = runRoot(t, "events", "report", "--config", dir, "--session", "no-such-session")
	require.NoError(t, err)
	assert.Contains(t, out, "log_entries: 0")
}
