package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCmd_PrintsCanonicalForm(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "fmt", "-c", exampleDocument)
	require.NoError(t, err)

	assert.Contains(t, out, "driver:")
	assert.Contains(t, out, "app-staging")
	assert.Contains(t, out, "ANSIBLE_ROLES_PATH")
}

func TestFmtCmd_IsIdempotent(t *testing.T) {
	t.Parallel()

	first, err := executeCommand(t, "fmt", "-c", exampleDocument)
	require.NoError(t, err)

	path := writeDocument(t, first)

	second, err := executeCommand(t, "fmt", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFmtCmd_WriteRewritesFile(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("testdata/scenario.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, source, 0o600))

	out, err := executeCommand(t, "fmt", "-c", path, "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "rewrote")

	rewritten, err := os.ReadFile(path) //nolint:gosec // G304: test-owned path.
	require.NoError(t, err)

	canonical, err := executeCommand(t, "fmt", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(rewritten))
}

func TestFmtCmd_WriteRewritesEnvResolvedFile(t *testing.T) {
	source, err := os.ReadFile("testdata/scenario.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "real-config.yaml")
	require.NoError(t, os.WriteFile(path, source, 0o600))
	t.Setenv("PROVISIO_CONFIG", path)

	out, err := executeCommand(t, "fmt", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "rewrote '"+path+"'")

	rewritten, err := os.ReadFile(path) //nolint:gosec // G304: test-owned path.
	require.NoError(t, err)

	canonical, err := executeCommand(t, "fmt", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(rewritten))

	// The working directory must not gain a stray default file.
	_, err = os.Stat("scenario.yaml")
	assert.True(t, os.IsNotExist(err))
}
