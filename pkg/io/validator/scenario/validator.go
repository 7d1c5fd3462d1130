// Package scenario validates test scenario documents against the recognized
// schema: all five sections present, a non-empty platform list with unique
// hostname-safe names, and string-valued step sequences.
package scenario

import (
	"fmt"
	"strings"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	ioutils "github.com/provisio-dev/provisio/pkg/io"
	"github.com/provisio-dev/provisio/pkg/io/validator"
)

// Validator validates v1alpha1 scenario documents.
type Validator struct{}

// Compile-time interface compliance verification.
var _ validator.Validator[*v1alpha1.Config] = (*Validator)(nil)

// NewValidator creates a scenario document validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the document and returns a structured result. Schema
// violations are errors; findings that a runner could still work with
// (unconventional step names, unknown driver names) are warnings.
func (v *Validator) Validate(config *v1alpha1.Config) validator.ValidationResult {
	result := validator.NewValidationResult()

	if config == nil {
		result.AddError(validator.ValidationError{
			Field:   "document",
			Message: "document is empty",
		})

		return result
	}

	v.validateDriver(config.Driver, &result)
	v.validatePlatforms(config.Platforms, &result)
	v.validateProvisioner(config.Provisioner, &result)
	v.validateScenario(config.Scenario, &result)
	v.validateVerifier(config.Verifier, &result)

	return result
}

func (v *Validator) validateDriver(driver *v1alpha1.Driver, result *validator.ValidationResult) {
	if driver == nil {
		result.AddError(requiredSection("driver", "the instance lifecycle backend"))

		return
	}

	if _, ok := ioutils.TrimNonEmpty(driver.Name); !ok {
		result.AddError(validator.ValidationError{
			Field:         "driver.name",
			Message:       "driver name is required",
			FixSuggestion: "Name the backend responsible for instance lifecycle (e.g. 'delegated')",
		})

		return
	}

	if !knownDriverName(driver.Name) {
		result.AddWarning(validator.ValidationError{
			Field:         "driver.name",
			Message:       "driver name is not a conventional backend",
			CurrentValue:  driver.Name,
			ExpectedValue: strings.Join(v1alpha1.KnownDriverNames(), ", "),
			FixSuggestion: "Confirm the runner can resolve this driver",
		})
	}
}

func (v *Validator) validatePlatforms(platforms []v1alpha1.Platform, result *validator.ValidationResult) {
	if platforms == nil {
		result.AddError(requiredSection("platforms", "the VM definitions to provision"))

		return
	}

	if len(platforms) == 0 {
		result.AddError(validator.ValidationError{
			Field:         "platforms",
			Message:       "at least one platform is required",
			FixSuggestion: "Declare a platform with a name and base image",
		})

		return
	}

	seen := make(map[string]struct{}, len(platforms))

	for index, platform := range platforms {
		field := fmt.Sprintf("platforms[%d].name", index)

		if _, ok := ioutils.TrimNonEmpty(platform.Name); !ok {
			result.AddError(validator.ValidationError{
				Field:         field,
				Message:       "platform name is required",
				FixSuggestion: "Give every platform a unique name",
			})

			continue
		}

		if err := v1alpha1.ValidatePlatformName(platform.Name); err != nil {
			result.AddError(validator.ValidationError{
				Field:        field,
				Message:      err.Error(),
				CurrentValue: platform.Name,
			})
		}

		if _, duplicate := seen[platform.Name]; duplicate {
			result.AddError(validator.ValidationError{
				Field:         field,
				Message:       "platform name is not unique",
				CurrentValue:  platform.Name,
				FixSuggestion: "Platform names must be unique within the list",
			})

			continue
		}

		seen[platform.Name] = struct{}{}
	}
}

func (v *Validator) validateProvisioner(provisioner *v1alpha1.Provisioner, result *validator.ValidationResult) {
	if provisioner == nil {
		result.AddError(requiredSection("provisioner", "the configuration-management tool"))

		return
	}

	if _, ok := ioutils.TrimNonEmpty(provisioner.Name); !ok {
		result.AddError(validator.ValidationError{
			Field:         "provisioner.name",
			Message:       "provisioner name is required",
			FixSuggestion: "Name the configuration-management tool (e.g. 'ansible')",
		})
	}

	if provisioner.Lint != nil && provisioner.Lint.Name == "" {
		result.AddError(validator.ValidationError{
			Field:         "provisioner.lint.name",
			Message:       "lint tool name is required when lint is configured",
			FixSuggestion: "Name the lint tool or drop the lint section",
		})
	}

	if provisioner.Inventory == nil {
		return
	}

	for category, path := range provisioner.Inventory.Links {
		if path == "" {
			result.AddError(validator.ValidationError{
				Field:         "provisioner.inventory.links." + category,
				Message:       "inventory link path is empty",
				FixSuggestion: "Point the link at a variable-file directory",
			})
		}
	}
}

func (v *Validator) validateScenario(scenario *v1alpha1.Scenario, result *validator.ValidationResult) {
	if scenario == nil {
		result.AddError(requiredSection("scenario", "the lifecycle step sequences"))

		return
	}

	if _, ok := ioutils.TrimNonEmpty(scenario.Name); !ok {
		result.AddError(validator.ValidationError{
			Field:         "scenario.name",
			Message:       "scenario name is required",
			FixSuggestion: "Name the scenario (e.g. 'default')",
		})
	}

	v.validateSequence("scenario.create_sequence", scenario.CreateSequence, result)
	v.validateSequence("scenario.test_sequence", scenario.TestSequence, result)
}

func (v *Validator) validateSequence(field string, steps []v1alpha1.Step, result *validator.ValidationResult) {
	for index, step := range steps {
		stepField := fmt.Sprintf("%s[%d]", field, index)

		if step == "" {
			result.AddError(validator.ValidationError{
				Field:         stepField,
				Message:       "step name must be a non-empty string",
				FixSuggestion: "Remove the empty entry or name a lifecycle step",
			})

			continue
		}

		if !step.Known() {
			result.AddWarning(validator.ValidationError{
				Field:         stepField,
				Message:       "step name is not part of the conventional runner vocabulary",
				CurrentValue:  string(step),
				FixSuggestion: "Confirm the runner recognizes this step",
			})
		}
	}
}

func (v *Validator) validateVerifier(verifier *v1alpha1.Verifier, result *validator.ValidationResult) {
	if verifier == nil {
		result.AddError(requiredSection("verifier", "the post-provisioning checker"))

		return
	}

	if _, ok := ioutils.TrimNonEmpty(verifier.Name); !ok {
		result.AddError(validator.ValidationError{
			Field:         "verifier.name",
			Message:       "verifier name is required",
			FixSuggestion: "Name the post-provisioning checker (e.g. 'testinfra')",
		})
	}

	if verifier.Lint != nil && verifier.Lint.Name == "" {
		result.AddError(validator.ValidationError{
			Field:         "verifier.lint.name",
			Message:       "lint tool name is required when lint is configured",
			FixSuggestion: "Name the lint tool or drop the lint section",
		})
	}
}

func requiredSection(name, purpose string) validator.ValidationError {
	return validator.ValidationError{
		Field:         name,
		Message:       "required section is missing",
		FixSuggestion: fmt.Sprintf("Add a %s section declaring %s", name, purpose),
	}
}

func knownDriverName(name string) bool {
	for _, known := range v1alpha1.KnownDriverNames() {
		if name == known {
			return true
		}
	}

	return false
}
