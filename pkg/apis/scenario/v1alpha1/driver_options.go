package v1alpha1

import (
	"fmt"

	mapstructure "github.com/go-viper/mapstructure/v2"
)

// DelegatedOptions is the typed view of Driver.Options for the delegated
// backend, which hands instance lifecycle to externally managed machines and
// only describes how to log into them.
type DelegatedOptions struct {
	// Managed reports whether the driver creates and destroys instances
	// itself. Delegated setups set this to false.
	Managed bool `mapstructure:"managed"`
	// LoginCmdTemplate is the command template used to open a login shell on
	// an instance (e.g. "ssh {instance} -F .ssh-config").
	LoginCmdTemplate string `mapstructure:"login_cmd_template"`
	// AnsibleConnectionOptions are connection variables handed to the
	// provisioner for each instance.
	AnsibleConnectionOptions map[string]string `mapstructure:"ansible_connection_options"`
}

// DelegatedOptions decodes the opaque options mapping into its delegated
// backend shape. Keys outside the delegated vocabulary are ignored; they stay
// available in Options for other consumers.
func (d *Driver) DelegatedOptions() (*DelegatedOptions, error) {
	opts := &DelegatedOptions{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: opts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDriverOptionsDecode, err)
	}

	err = decoder.Decode(d.Options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDriverOptionsDecode, err)
	}

	return opts, nil
}
