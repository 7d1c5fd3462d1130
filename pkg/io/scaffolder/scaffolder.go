// Package scaffolder generates new scenario projects.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/provisio-dev/provisio/pkg/io/generator"
	yamlgenerator "github.com/provisio-dev/provisio/pkg/io/generator/yaml"
	"github.com/provisio-dev/provisio/pkg/utils/notify"
)

// ErrScenarioConfigGeneration wraps failures when creating scenario.yaml.
var ErrScenarioConfigGeneration = errors.New("failed to generate scenario configuration")

// Scaffolder generates scenario project files.
type Scaffolder struct {
	Config    *v1alpha1.Config
	Generator generator.Generator[v1alpha1.Config, yamlgenerator.Options]
	Writer    io.Writer
}

// NewScaffolder creates a Scaffolder for the provided scenario configuration.
func NewScaffolder(cfg *v1alpha1.Config, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Config:    cfg,
		Generator: yamlgenerator.NewGenerator[v1alpha1.Config](),
		Writer:    writer,
	}
}

// Scaffold writes the scenario configuration file into the output directory.
// Existing files are left untouched unless force is set.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	path := filepath.Join(output, v1alpha1.DefaultConfigFile)

	_, statErr := os.Stat(path)
	exists := statErr == nil

	if exists && !force {
		notify.Activityf(s.Writer, "skipping '%s' because it already exists, use --force to overwrite",
			v1alpha1.DefaultConfigFile)

		return nil
	}

	_, err := s.Generator.Generate(*s.Config, yamlgenerator.Options{Output: path, Force: force})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScenarioConfigGeneration, err)
	}

	s.notifyFileAction(v1alpha1.DefaultConfigFile, exists)

	return nil
}

func (s *Scaffolder) notifyFileAction(displayName string, overwritten bool) {
	action := "created"
	if overwritten {
		action = "overwrote"
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.GenerateType,
		Content: "%s '%s'",
		Args:    []any{action, displayName},
		Writer:  s.Writer,
	})
}
