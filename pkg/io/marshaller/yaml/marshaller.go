// Package yamlmarshaller implements the marshaller contract for YAML.
//
// Marshalling goes through sigs.k8s.io/yaml so json struct tags drive the
// wire shape, keys are emitted in canonical (sorted) order, and output is
// stable across runs.
package yamlmarshaller

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Marshaller marshals and unmarshals models of type T as YAML.
type Marshaller[T any] struct{}

// NewMarshaller creates a new YAML Marshaller for type T.
func NewMarshaller[T any]() *Marshaller[T] {
	return &Marshaller[T]{}
}

// Marshal serializes the model to a YAML string.
func (m *Marshaller[T]) Marshal(model T) (string, error) {
	data, err := yaml.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return string(data), nil
}

// Unmarshal deserializes YAML data into the model.
func (m *Marshaller[T]) Unmarshal(data []byte, model *T) error {
	err := yaml.Unmarshal(data, model)
	if err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}

// UnmarshalString deserializes a YAML string into the model.
func (m *Marshaller[T]) UnmarshalString(data string, model *T) error {
	return m.Unmarshal([]byte(data), model)
}
