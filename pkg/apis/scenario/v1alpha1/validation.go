package v1alpha1

import (
	"fmt"
	"regexp"
)

// platformNameRegex matches hostname-style names: lowercase alphanumeric with
// optional hyphens, starting with a letter and ending with an alphanumeric.
// Platform names end up as VM instance names and SSH host aliases, which both
// expect hostname-safe values.
var platformNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// PlatformNameMaxLength is the maximum length for a platform name.
const PlatformNameMaxLength = 63

// ValidatePlatformName validates that a platform name is hostname compliant.
//
// Returns nil if the name is valid, or an error describing the validation failure.
func ValidatePlatformName(name string) error {
	if name == "" {
		return nil // Emptiness is reported separately as a required-field error
	}

	if len(name) > PlatformNameMaxLength {
		return fmt.Errorf(
			"%w: %q exceeds max %d characters (got %d)",
			ErrPlatformNameTooLong, name, PlatformNameMaxLength, len(name),
		)
	}

	if !platformNameRegex.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must be hostname compliant "+
				"(lowercase letters, numbers, and hyphens; must start with a letter; "+
				"must not end with a hyphen)",
			ErrPlatformNameInvalid, name,
		)
	}

	return nil
}

// KnownSteps returns the conventional step vocabulary runners recognize.
func KnownSteps() []Step {
	return []Step{
		StepCreate,
		StepConverge,
		StepDestroy,
		StepVerify,
		StepLint,
		StepIdempotence,
		StepPrepare,
		StepCleanup,
		StepDependency,
		StepSideEffect,
		StepSyntax,
	}
}

// KnownDriverNames returns driver names commonly resolvable by runners.
// Unknown names are legal; validators surface them as warnings only.
func KnownDriverNames() []string {
	return []string{
		DefaultDriverName,
		"vagrant",
		"docker",
		"podman",
		"ec2",
		"gce",
	}
}

// ValidSequenceKinds returns supported sequence kind values.
func ValidSequenceKinds() []SequenceKind {
	return []SequenceKind{SequenceCreate, SequenceTest}
}
