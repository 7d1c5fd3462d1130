package cmd_test

import (
	"bytes"
	"testing"

	"github.com/provisio-dev/provisio/pkg/cli/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := cmd.Execute(rootCmd)

	return out.String(), err
}

func TestRootCmd_ShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "provisio")
	assert.Contains(t, out, "init")
	assert.Contains(t, out, "validate")
	assert.Contains(t, out, "info")
	assert.Contains(t, out, "sequence")
	assert.Contains(t, out, "fmt")
	assert.Contains(t, out, "schema")
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (Built on unknown from Git SHA none)")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
