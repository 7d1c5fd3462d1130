package configmanager_test

import (
	"bytes"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	configmanagerinterface "github.com/provisio-dev/provisio/pkg/io/configmanager"
	scenarioconfigmanager "github.com/provisio-dev/provisio/pkg/io/configmanager/scenario"
	yamlmarshaller "github.com/provisio-dev/provisio/pkg/io/marshaller/yaml"
	"github.com/provisio-dev/provisio/pkg/io/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleDocument = "testdata/scenario.yaml"

func loadExample(t *testing.T) *v1alpha1.Config {
	t.Helper()

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, exampleDocument)

	config, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.NoError(t, err)
	require.NotNil(t, config)

	return config
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_ExampleDocument_Platforms(t *testing.T) {
	t.Parallel()

	config := loadExample(t)

	require.Len(t, config.Platforms, 2)
	assert.Equal(t, "app-staging", config.Platforms[0].Name)
	assert.Equal(t, "mon-staging", config.Platforms[1].Name)
	assert.Equal(t, []string{"app", "staging"}, config.Platforms[0].Groups)
}

func TestLoad_ExampleDocument_Sequences(t *testing.T) {
	t.Parallel()

	config := loadExample(t)

	require.NotNil(t, config.Scenario)
	assert.Equal(t, []v1alpha1.Step{v1alpha1.StepCreate}, config.Scenario.CreateSequence)
	assert.Equal(t, []v1alpha1.Step{
		v1alpha1.StepDestroy,
		v1alpha1.StepCreate,
		v1alpha1.StepConverge,
		v1alpha1.StepDestroy,
	}, config.Scenario.TestSequence)
}

func TestLoad_ExampleDocument_EnvPreservedVerbatim(t *testing.T) {
	t.Parallel()

	config := loadExample(t)

	require.NotNil(t, config.Provisioner)
	assert.Equal(t, map[string]string{
		"ANSIBLE_ROLES_PATH": "../ansible-base/roles",
		"ANSIBLE_CONFIG":     "../ansible-base/ansible.cfg",
	}, config.Provisioner.Env)
}

func TestLoad_ExampleDocument_DriverOptions(t *testing.T) {
	t.Parallel()

	config := loadExample(t)

	require.NotNil(t, config.Driver)
	assert.Equal(t, "delegated", config.Driver.Name)

	opts, err := config.Driver.DelegatedOptions()
	require.NoError(t, err)
	assert.False(t, opts.Managed)
	assert.Equal(t, "ssh {instance} -F .ssh-config", opts.LoginCmdTemplate)
	assert.Equal(t, "ssh", opts.AnsibleConnectionOptions["ansible_connection"])
}

func TestLoad_RoundTripYieldsIdenticalEntitySet(t *testing.T) {
	t.Parallel()

	first := loadExample(t)

	marshaller := yamlmarshaller.NewMarshaller[v1alpha1.Config]()
	serialized, err := marshaller.Marshal(*first)
	require.NoError(t, err)

	path := writeDocument(t, serialized)
	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, path)

	second, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_MissingPlatformsKey(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `
driver:
  name: delegated
provisioner:
  name: ansible
scenario:
  name: default
  create_sequence: [create]
  test_sequence: [destroy, create, converge, destroy]
verifier:
  name: testinfra
`)

	var out bytes.Buffer

	manager := scenarioconfigmanager.NewConfigManager(&out, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	require.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.Contains(t, out.String(), "platforms")
}

func TestLoad_DuplicatePlatformNames(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `
driver:
  name: delegated
platforms:
  - name: app-staging
  - name: app-staging
provisioner:
  name: ansible
scenario:
  name: default
  create_sequence: [create]
  test_sequence: [destroy, create, converge, destroy]
verifier:
  name: testinfra
`)

	var out bytes.Buffer

	manager := scenarioconfigmanager.NewConfigManager(&out, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	require.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.Contains(t, out.String(), "not unique")
}

func TestLoad_UnknownTopLevelKeyRejected(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `
drivr:
  name: delegated
platforms:
  - name: app-staging
provisioner:
  name: ansible
scenario:
  name: default
verifier:
  name: testinfra
`)

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drivr")
}

func TestLoad_NonStringStepRejected(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, `
driver:
  name: delegated
platforms:
  - name: app-staging
provisioner:
  name: ansible
scenario:
  name: default
  create_sequence: [create]
  test_sequence: [destroy, 5]
verifier:
  name: testinfra
`)

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot unmarshal")
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	manager := scenarioconfigmanager.NewConfigManager(
		&bytes.Buffer{},
		filepath.Join(t.TempDir(), "missing.yaml"),
	)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	require.ErrorIs(t, err, scenarioconfigmanager.ErrConfigNotFound)
}

func TestLoad_EmptyDocument(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "")

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_CachesLoadedConfig(t *testing.T) {
	t.Parallel()

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, exampleDocument)

	first, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.NoError(t, err)

	second, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestLoad_FailedLoadLeavesNoConfig(t *testing.T) {
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

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, path)

	_, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	assert.Nil(t, manager.Config)
}

func TestLoad_EnvVarPathBinding(t *testing.T) {
	path := writeDocument(t, `
driver:
  name: delegated
platforms:
  - name: app-staging
provisioner:
  name: ansible
scenario:
  name: default
  create_sequence: [create]
  test_sequence: [destroy, create, converge, destroy]
verifier:
  name: testinfra
`)

	t.Setenv("PROVISIO_CONFIG", path)

	manager := scenarioconfigmanager.NewConfigManager(&bytes.Buffer{}, "")

	config, err := manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.NoError(t, err)
	assert.Equal(t, path, manager.ConfigFileUsed())
	require.Len(t, config.Platforms, 1)
}

func TestLoad_NotifiesProgress(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	manager := scenarioconfigmanager.NewConfigManager(&out, exampleDocument)

	_, err := manager.Load(configmanagerinterface.LoadOptions{})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "loading scenario config")
	assert.Contains(t, got, "'testdata/scenario.yaml' found")
	assert.Contains(t, got, "scenario config loaded")
}

func TestLoad_ExpandsHomeConfigPath(t *testing.T) {
	t.Parallel()

	usr, err := user.Current()
	require.NoError(t, err)

	manager := scenarioconfigmanager.NewConfigManager(
		&bytes.Buffer{},
		"~/provisio-nonexistent-scenario.yaml",
	)

	_, err = manager.Load(configmanagerinterface.LoadOptions{Silent: true})
	require.Error(t, err)
	require.ErrorIs(t, err, scenarioconfigmanager.ErrConfigNotFound)
	// The not-found error names the expanded path, proving ~ was resolved.
	assert.Contains(t, err.Error(), usr.HomeDir)
}
