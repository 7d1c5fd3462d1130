// Package marshaller defines the generic marshalling contract used by
// generators, the scaffolder, and tests.
package marshaller

// Marshaller converts models of type T to and from a textual representation.
type Marshaller[T any] interface {
	// Marshal serializes the model and returns the textual representation.
	Marshal(model T) (string, error)
	// Unmarshal deserializes data into the model.
	Unmarshal(data []byte, model *T) error
	// UnmarshalString deserializes a string into the model.
	UnmarshalString(data string, model *T) error
}
