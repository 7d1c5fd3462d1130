package v1alpha1

const (
	// DefaultConfigFile is the default scenario document filename.
	DefaultConfigFile = "scenario.yaml"
	// DefaultScenarioName is the scenario name used when none is configured.
	DefaultScenarioName = "default"
	// DefaultDriverName is the default instance lifecycle backend.
	DefaultDriverName = "delegated"
	// DefaultProvisionerName is the default configuration-management tool.
	DefaultProvisionerName = "ansible"
	// DefaultProvisionerLintName is the default provisioner lint tool.
	DefaultProvisionerLintName = "ansible-lint"
	// DefaultVerifierName is the default post-provisioning verifier.
	DefaultVerifierName = "testinfra"
	// DefaultVerifierLintName is the default verifier lint tool.
	DefaultVerifierLintName = "flake8"
)

// DefaultCreateSequence returns the default creation-only sequence.
func DefaultCreateSequence() []Step {
	return []Step{StepCreate}
}

// DefaultTestSequence returns the default full test sequence.
func DefaultTestSequence() []Step {
	return []Step{StepDestroy, StepCreate, StepConverge, StepDestroy}
}
