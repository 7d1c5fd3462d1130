package v1alpha1

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- Step ---

// Step is a symbolic lifecycle action within a scenario sequence. Values are
// opaque to the schema; the external runner gives them meaning. The
// conventional vocabulary is enumerated by KnownSteps.
type Step string

// Conventional step names recognized by runners.
const (
	StepCreate      Step = "create"
	StepConverge    Step = "converge"
	StepDestroy     Step = "destroy"
	StepVerify      Step = "verify"
	StepLint        Step = "lint"
	StepIdempotence Step = "idempotence"
	StepPrepare     Step = "prepare"
	StepCleanup     Step = "cleanup"
	StepDependency  Step = "dependency"
	StepSideEffect  Step = "side_effect"
	StepSyntax      Step = "syntax"
)

// Known reports whether the step is part of the conventional runner
// vocabulary. Unknown steps are legal; validators surface them as warnings
// only.
func (s Step) Known() bool {
	for _, step := range KnownSteps() {
		if s == step {
			return true
		}
	}

	return false
}

// String returns the step name (pflag.Value interface).
func (s Step) String() string {
	return string(s)
}

// UnmarshalYAML rejects anything but a plain string scalar. Step values are
// opaque, but the document contract requires them to be strings; without
// this, a bare `5` in a sequence would be coerced to Step("5").
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
		return fmt.Errorf(
			"line %d: cannot unmarshal %s into a step name (steps must be strings)",
			value.Line, value.Tag,
		)
	}

	*s = Step(value.Value)

	return nil
}

// --- SequenceKind ---

// SequenceKind selects one of the two scenario sequences.
type SequenceKind string

const (
	// SequenceCreate selects the creation-only sequence.
	SequenceCreate SequenceKind = "create"
	// SequenceTest selects the full test sequence.
	SequenceTest SequenceKind = "test"
)

// String returns the sequence kind name (pflag.Value interface).
func (k *SequenceKind) String() string {
	return string(*k)
}

// Set for SequenceKind (pflag.Value interface).
func (k *SequenceKind) Set(value string) error {
	for _, kind := range ValidSequenceKinds() {
		if strings.EqualFold(value, string(kind)) {
			*k = kind

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s, %s)",
		ErrInvalidSequenceKind,
		value,
		SequenceCreate,
		SequenceTest,
	)
}

// Type for SequenceKind (pflag.Value interface).
func (k *SequenceKind) Type() string {
	return "sequence"
}
