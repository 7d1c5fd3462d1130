// Package configmanager implements configuration management for test
// scenario documents.
//
// File location goes through Viper (explicit path, PROVISIO_CONFIG, then a
// search of the working directory), but the document body is decoded with
// yaml.v3 in strict mode: the schema guarantees environment variable keys
// and values verbatim, and Viper folds key case.
package configmanager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/provisio-dev/provisio/pkg/fsutil"
	configmanagerinterface "github.com/provisio-dev/provisio/pkg/io/configmanager"
	"github.com/provisio-dev/provisio/pkg/io/validator"
	scenariovalidator "github.com/provisio-dev/provisio/pkg/io/validator/scenario"
	"github.com/provisio-dev/provisio/pkg/utils/envvar"
	"github.com/provisio-dev/provisio/pkg/utils/notify"
)

// ErrConfigNotFound is returned when no scenario document can be located.
var ErrConfigNotFound = errors.New("scenario config file not found")

// envPrefix scopes environment variable bindings (PROVISIO_CONFIG).
const envPrefix = "PROVISIO"

// ConfigManager implements configuration management for v1alpha1 scenario
// documents.
type ConfigManager struct {
	Viper *viper.Viper
	// Config is the loaded document; nil until Load succeeds.
	Config *v1alpha1.Config
	// Writer is the destination for load notifications.
	Writer io.Writer

	path         string
	resolvedPath string
	configLoaded bool
}

// Compile-time interface compliance verification.
var _ configmanagerinterface.ConfigManager[v1alpha1.Config] = (*ConfigManager)(nil)

// NewConfigManager creates a configuration manager. An empty path enables
// the default search: $PROVISIO_CONFIG, then scenario.yaml in the working
// directory. ${VAR} placeholders and a leading ~ in the path are expanded.
func NewConfigManager(writer io.Writer, path string) *ConfigManager {
	viperInstance := viper.New()
	viperInstance.SetConfigName("scenario")
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")
	viperInstance.SetEnvPrefix(envPrefix)
	_ = viperInstance.BindEnv("config")

	return &ConfigManager{
		Viper:  viperInstance,
		Writer: writer,
		path:   path,
	}
}

// Load loads the scenario document with the specified options. Returns the
// loaded config, either freshly loaded or previously cached. Returns nil
// config on error; a failed load never partially applies configuration.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*v1alpha1.Config, error) {
	if m.configLoaded {
		if !opts.Silent {
			m.notifyConfigReused()
		}

		return m.Config, nil
	}

	if !opts.Silent {
		m.notifyLoadingConfig()
	}

	path, err := m.resolvePath()
	if err != nil {
		return nil, err
	}

	if !opts.Silent {
		m.notifyConfigFound(path)
	}

	config, err := m.readConfig(path)
	if err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		err = m.validateConfig(config)
		if err != nil {
			return nil, err
		}
	}

	if !opts.Silent {
		m.notifyLoadingComplete(opts)
	}

	m.Config = config
	m.resolvedPath = path
	m.configLoaded = true

	return m.Config, nil
}

// ConfigFileUsed returns the path of the loaded document, or the empty
// string before a successful Load.
func (m *ConfigManager) ConfigFileUsed() string {
	return m.resolvedPath
}

// resolvePath determines the document path: explicit path, then the
// PROVISIO_CONFIG binding, then Viper's file search in the working directory.
func (m *ConfigManager) resolvePath() (string, error) {
	if m.path != "" {
		return m.ensureExists(expandPath(m.path))
	}

	if bound := m.Viper.GetString("config"); bound != "" {
		return m.ensureExists(expandPath(bound))
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			return "", fmt.Errorf("%w: no %s in the working directory", ErrConfigNotFound, v1alpha1.DefaultConfigFile)
		}
		// Viper located the file; parse problems are reported by the strict
		// decoder against the real path below.
	}

	return m.Viper.ConfigFileUsed(), nil
}

// expandPath expands ${VAR} placeholders and a leading ~ in user-supplied
// config paths. Paths without a ~ prefix are kept as written so relative
// paths stay relative in notifications.
func expandPath(path string) string {
	path = envvar.Expand(path)

	if !strings.HasPrefix(path, "~") {
		return path
	}

	expanded, err := fsutil.ExpandHomePath(path)
	if err != nil {
		return path
	}

	return expanded
}

func (m *ConfigManager) ensureExists(path string) (string, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	return path, nil
}

// readConfig reads and strictly decodes the document. Unknown fields are
// rejected so that typos surface with the offending key and line.
func (m *ConfigManager) readConfig(path string) (*v1alpha1.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: the path is user-supplied configuration.
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	config := &v1alpha1.Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(config)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, errors.New("document is empty"))
		}

		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

func (m *ConfigManager) validateConfig(config *v1alpha1.Config) error {
	result := scenariovalidator.NewValidator().Validate(config)

	warnings := validator.FormatWarnings(result)
	for _, warning := range warnings {
		notify.Warningf(m.Writer, "%s", warning)
	}

	if !result.Valid {
		notify.Errorf(m.Writer, "%s", validator.FormatErrorsMultiline(result))

		// Return a validation summary instead of the full finding list
		return validator.NewSummaryError(len(result.Errors), len(result.Warnings))
	}

	return nil
}

func (m *ConfigManager) notifyConfigReused() {
	notify.Successf(m.Writer, "config already loaded, reusing existing config")
}

func (m *ConfigManager) notifyLoadingConfig() {
	notify.Activityf(m.Writer, "loading scenario config")
}

func (m *ConfigManager) notifyConfigFound(path string) {
	notify.Activityf(m.Writer, "'%s' found", path)
}

func (m *ConfigManager) notifyLoadingComplete(opts configmanagerinterface.LoadOptions) {
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "scenario config loaded",
		Timer:   opts.Timer,
		Writer:  m.Writer,
	})
}
