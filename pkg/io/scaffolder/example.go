package scaffolder

import v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"

// ExampleConfig returns the starter scenario configuration written by the
// init command. It describes a two-platform staging setup driven by the
// delegated driver and an Ansible provisioner.
func ExampleConfig() *v1alpha1.Config {
	config := v1alpha1.NewConfig()

	config.Driver.Options = map[string]any{
		"managed":            false,
		"login_cmd_template": "ssh {instance} -F .ssh-config",
		"ansible_connection_options": map[string]any{
			"ansible_connection":      "ssh",
			"ansible_ssh_common_args": "-F .ssh-config",
		},
	}

	config.Platforms = []v1alpha1.Platform{
		{
			Name:   "app-staging",
			VMBase: "bento/ubuntu-20.04",
			VMName: "app-staging",
			Groups: []string{"app", "staging"},
		},
		{
			Name:   "mon-staging",
			VMBase: "bento/ubuntu-20.04",
			VMName: "mon-staging",
			Groups: []string{"mon", "staging"},
		},
	}

	config.Provisioner.ConfigOptions = map[string]any{
		"defaults": map[string]any{
			"interpreter_python": "auto_silent",
		},
	}
	config.Provisioner.Options = map[string]any{
		"diff": true,
	}
	config.Provisioner.Inventory = &v1alpha1.Inventory{
		Links: map[string]string{
			"group_vars": "../ansible-base/group_vars",
			"host_vars":  "../ansible-base/host_vars",
		},
	}
	config.Provisioner.Env = map[string]string{
		"ANSIBLE_ROLES_PATH": "../ansible-base/roles",
		"ANSIBLE_CONFIG":     "../ansible-base/ansible.cfg",
	}

	config.Scenario.Name = "staging"

	return config
}
