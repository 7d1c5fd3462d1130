package yamlgenerator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	yamlgenerator "github.com/provisio-dev/provisio/pkg/io/generator/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFilePermissions = 0o600

func TestMain(m *testing.M) {
	exitCode := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(exitCode)
}

func testPlatform(name string) v1alpha1.Platform {
	return v1alpha1.Platform{
		Name:   name,
		VMBase: "bento/ubuntu-20.04",
		Groups: []string{"app", "staging"},
	}
}

func TestGenerate_RenderOnly(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[v1alpha1.Platform]()

	result, err := gen.Generate(testPlatform("app-staging"), yamlgenerator.Options{})
	require.NoError(t, err)

	snaps.MatchSnapshot(t, result)
}

func TestGenerate_WritesFile(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[v1alpha1.Platform]()
	output := filepath.Join(t.TempDir(), "platform.yaml")

	result, err := gen.Generate(testPlatform("app-staging"), yamlgenerator.Options{Output: output})
	require.NoError(t, err)

	content, err := os.ReadFile(output) //nolint:gosec // G304: test-owned path.
	require.NoError(t, err)
	assert.Equal(t, result, string(content))
}

func TestGenerate_SkipsExistingFile(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[v1alpha1.Platform]()
	output := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing content"), testFilePermissions))

	_, err := gen.Generate(testPlatform("app-staging"), yamlgenerator.Options{Output: output})
	require.NoError(t, err)

	content, err := os.ReadFile(output) //nolint:gosec // G304: test-owned path.
	require.NoError(t, err)
	assert.Equal(t, "existing content", string(content))
}

func TestGenerate_ForceOverwrites(t *testing.T) {
	t.Parallel()

	gen := yamlgenerator.NewGenerator[v1alpha1.Platform]()
	output := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing content"), testFilePermissions))

	result, err := gen.Generate(
		testPlatform("force-staging"),
		yamlgenerator.Options{Output: output, Force: true},
	)
	require.NoError(t, err)

	content, err := os.ReadFile(output) //nolint:gosec // G304: test-owned path.
	require.NoError(t, err)
	assert.Equal(t, result, string(content))
	assert.Contains(t, result, "force-staging")
}
