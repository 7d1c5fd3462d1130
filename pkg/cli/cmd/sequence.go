package cmd

import (
	"fmt"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/spf13/cobra"
)

// NewSequenceCmd creates the sequence command that prints the steps of the
// selected scenario sequence, one per line. The output is meant for shell
// consumption by external runners.
func NewSequenceCmd() *cobra.Command {
	kind := v1alpha1.SequenceTest

	cmd := &cobra.Command{
		Use:          "sequence",
		Short:        "Print the steps of a scenario sequence",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, _, err := loadScenario(cmd, true)
			if err != nil {
				return err
			}

			steps := config.Scenario.TestSequence
			if kind == v1alpha1.SequenceCreate {
				steps = config.Scenario.CreateSequence
			}

			for _, step := range steps {
				fmt.Fprintln(cmd.OutOrStdout(), step.String())
			}

			return nil
		},
	}

	addConfigFlag(cmd)
	cmd.Flags().VarP(&kind, "kind", "k", "Sequence to print (create or test)")

	return cmd
}
