package cmd

import (
	"fmt"
	"strings"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/provisio-dev/provisio/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command that summarizes the scenario
// configuration.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info",
		Short:        "Show a summary of the scenario configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, _, err := loadScenario(cmd, true)
			if err != nil {
				return err
			}

			printSummary(cmd, config)

			return nil
		},
	}

	addConfigFlag(cmd)

	return cmd
}

func printSummary(cmd *cobra.Command, config *v1alpha1.Config) {
	out := cmd.OutOrStdout()

	notify.Titlef(out, "📋", "scenario '%s'", config.Scenario.Name)

	fmt.Fprintf(out, "driver: %s\n", config.Driver.Name)
	fmt.Fprintf(out, "provisioner: %s\n", config.Provisioner.Name)
	fmt.Fprintf(out, "verifier: %s\n", config.Verifier.Name)
	fmt.Fprintf(out, "platforms (%d):\n", len(config.Platforms))

	for _, platform := range config.Platforms {
		fmt.Fprintf(out, "  - %s", platform.Name)

		if len(platform.Groups) > 0 {
			fmt.Fprintf(out, " [%s]", strings.Join(platform.Groups, ", "))
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "create sequence: %s\n", formatSequence(config.Scenario.CreateSequence))
	fmt.Fprintf(out, "test sequence: %s\n", formatSequence(config.Scenario.TestSequence))

	if len(config.Provisioner.Env) > 0 {
		fmt.Fprintf(out, "provisioner env vars: %d\n", len(config.Provisioner.Env))
	}
}

func formatSequence(steps []v1alpha1.Step) string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.String())
	}

	return strings.Join(names, " -> ")
}
