package v1alpha1

// NewConfig creates a new Config with all sections present and named
// defaults filled in. Platforms start empty; callers add their own.
func NewConfig() *Config {
	return &Config{
		Driver:      NewDriver(),
		Platforms:   nil,
		Provisioner: NewProvisioner(),
		Scenario:    NewScenario(),
		Verifier:    NewVerifier(),
	}
}

// NewDriver creates a Driver with the default backend name.
func NewDriver() *Driver {
	return &Driver{
		Name: DefaultDriverName,
	}
}

// NewProvisioner creates a Provisioner with default tool names.
func NewProvisioner() *Provisioner {
	return &Provisioner{
		Name: DefaultProvisionerName,
		Lint: &Lint{Name: DefaultProvisionerLintName},
	}
}

// NewScenario creates a Scenario with the default name and sequences.
func NewScenario() *Scenario {
	return &Scenario{
		Name:           DefaultScenarioName,
		CreateSequence: DefaultCreateSequence(),
		TestSequence:   DefaultTestSequence(),
	}
}

// NewVerifier creates a Verifier with default tool names.
func NewVerifier() *Verifier {
	return &Verifier{
		Name: DefaultVerifierName,
		Lint: &Lint{Name: DefaultVerifierLintName},
	}
}
