// Package yamlgenerator renders models as YAML and optionally writes them to
// disk.
package yamlgenerator

import (
	"fmt"

	"github.com/provisio-dev/provisio/pkg/fsutil"
	"github.com/provisio-dev/provisio/pkg/io/marshaller"
	yamlmarshaller "github.com/provisio-dev/provisio/pkg/io/marshaller/yaml"
)

// Options configures where generated YAML is written.
type Options struct {
	// Output is the destination file path; empty means render only.
	Output string
	// Force overwrites an existing file at Output.
	Force bool
}

// Generator renders a model as YAML.
type Generator[T any] struct {
	Marshaller marshaller.Marshaller[T]
}

// NewGenerator creates and returns a new Generator instance.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{
		Marshaller: yamlmarshaller.NewMarshaller[T](),
	}
}

// Generate marshals the model to YAML and, when opts.Output is set, writes
// the result to that path. The rendered YAML is returned either way.
func (g *Generator[T]) Generate(model T, opts Options) (string, error) {
	out, err := g.Marshaller.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to generate YAML: %w", err)
	}

	if opts.Output != "" {
		result, err := fsutil.TryWriteFile(out, opts.Output, opts.Force)
		if err != nil {
			return "", fmt.Errorf("failed to write generated YAML: %w", err)
		}

		return result, nil
	}

	return out, nil
}
