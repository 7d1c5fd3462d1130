package cmd

import (
	"fmt"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/provisio-dev/provisio/pkg/cli/helpers"
	configmanagerinterface "github.com/provisio-dev/provisio/pkg/io/configmanager"
	scenarioconfigmanager "github.com/provisio-dev/provisio/pkg/io/configmanager/scenario"
	"github.com/provisio-dev/provisio/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// addConfigFlag registers the shared flag that selects the scenario
// configuration file.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(
		helpers.ConfigFlagName,
		"c",
		"",
		"Path to the scenario configuration file (defaults to "+v1alpha1.DefaultConfigFile+")",
	)
}

// loadScenario loads the scenario configuration selected by the command's
// config flag. The manager is returned alongside the config so callers can
// ask which file was actually resolved. The timer is attached when the
// timing flag is enabled.
func loadScenario(
	cmd *cobra.Command,
	silent bool,
) (*v1alpha1.Config, *scenarioconfigmanager.ConfigManager, error) {
	path, err := cmd.Flags().GetString(helpers.ConfigFlagName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s flag: %w", helpers.ConfigFlagName, err)
	}

	tmr := helpers.MaybeTimer(cmd, timer.New())
	if tmr != nil {
		tmr.Start()
	}

	manager := scenarioconfigmanager.NewConfigManager(cmd.OutOrStdout(), path)

	config, err := manager.Load(configmanagerinterface.LoadOptions{
		Timer:  tmr,
		Silent: silent,
	})
	if err != nil {
		return nil, nil, err
	}

	return config, manager, nil
}
