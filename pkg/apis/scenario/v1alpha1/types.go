package v1alpha1

// --- Core Types ---

// Config is the root of a declarative test scenario document. It names the
// driver that manages instance lifecycle, the platforms (VM definitions) to
// create, the provisioner applied to them, the scenario step sequences, and
// the verifier used for post-provisioning checks.
//
// The document is read once, wholly, at the start of a test run and is never
// mutated afterwards. All five sections are required.
type Config struct {
	Driver      *Driver      `json:"driver,omitempty"      yaml:"driver,omitempty"      jsonschema:"description=Backend responsible for instance lifecycle"`
	Platforms   []Platform   `json:"platforms,omitempty"   yaml:"platforms,omitempty"   jsonschema:"description=Ordered list of VM definitions to provision"`
	Provisioner *Provisioner `json:"provisioner,omitempty" yaml:"provisioner,omitempty" jsonschema:"description=Configuration-management tool applied to instances"`
	Scenario    *Scenario    `json:"scenario,omitempty"    yaml:"scenario,omitempty"    jsonschema:"description=Named ordered lifecycle step sequences"`
	Verifier    *Verifier    `json:"verifier,omitempty"    yaml:"verifier,omitempty"    jsonschema:"description=Tool asserting post-provisioning state"`
}

// Driver names the backend responsible for instance lifecycle (create,
// destroy, login). Options are backend-specific and opaque to the schema.
type Driver struct {
	Name    string         `json:"name"              yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Platform declares a single VM instance to provision. Groups determine
// which provisioner variables and roles apply to the instance.
type Platform struct {
	Name   string   `json:"name"              yaml:"name"`
	VMBase string   `json:"vm_base,omitempty" yaml:"vm_base,omitempty" jsonschema:"description=Base image the instance is created from"`
	VMName string   `json:"vm_name,omitempty" yaml:"vm_name,omitempty" jsonschema:"description=Instance name handed to the driver"`
	Groups []string `json:"groups,omitempty"  yaml:"groups,omitempty"`
}

// Provisioner describes how the configuration-management tool is invoked.
type Provisioner struct {
	Name          string            `json:"name"                     yaml:"name"`
	Lint          *Lint             `json:"lint,omitempty"           yaml:"lint,omitempty"`
	ConfigOptions map[string]any    `json:"config_options,omitempty" yaml:"config_options,omitempty"`
	Options       map[string]any    `json:"options,omitempty"        yaml:"options,omitempty"`
	Inventory     *Inventory        `json:"inventory,omitempty"      yaml:"inventory,omitempty"`
	Env           map[string]string `json:"env,omitempty"            yaml:"env,omitempty" jsonschema:"description=Environment variables the provisioner runs under, preserved verbatim"`
}

// Inventory links inventory categories (e.g. group_vars, host_vars) to the
// paths the provisioner reads variable files from.
type Inventory struct {
	Links map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
}

// Lint names the lint tool attached to a provisioner or verifier.
type Lint struct {
	Name string `json:"name" yaml:"name"`
}

// Scenario names the scenario and defines its two independently ordered
// lifecycle sequences. Step names are symbolic and interpreted by the
// external runner, not by this schema.
type Scenario struct {
	Name           string `json:"name"                      yaml:"name"`
	CreateSequence []Step `json:"create_sequence,omitempty" yaml:"create_sequence,omitempty"`
	TestSequence   []Step `json:"test_sequence,omitempty"   yaml:"test_sequence,omitempty"`
}

// Verifier names the tool used to assert post-provisioning state.
type Verifier struct {
	Name string `json:"name"           yaml:"name"`
	Lint *Lint  `json:"lint,omitempty" yaml:"lint,omitempty"`
}
