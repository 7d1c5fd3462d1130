package cmd

import (
	"github.com/provisio-dev/provisio/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command. Loading already validates the
// document, so the command only reports the outcome.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate the scenario configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, err := loadScenario(cmd, false)
			if err != nil {
				return err
			}

			notify.Successf(cmd.OutOrStdout(), "scenario config is valid")

			return nil
		},
	}

	addConfigFlag(cmd)

	return cmd
}
