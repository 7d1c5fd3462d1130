package cmd_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDocument = "testdata/scenario.yaml"

func TestValidateCmd_ValidDocument(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "validate", "-c", exampleDocument)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario config is valid")
}

func TestValidateCmd_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := executeCommand(t, "validate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateCmd_InvalidDocument(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `
driver:
  name: delegated
provisioner:
  name: ansible
scenario:
  name: default
verifier:
  name: testinfra
`)

	out, err := executeCommand(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "platforms")
}

func TestValidateCmd_TimingFlag(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, "validate", "-c", exampleDocument, "--timing")
	require.NoError(t, err)
	assert.Contains(t, out, "⏲")
}
