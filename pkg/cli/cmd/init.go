package cmd

import (
	"fmt"

	"github.com/provisio-dev/provisio/pkg/io/scaffolder"
	"github.com/provisio-dev/provisio/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command that scaffolds a new scenario project.
func NewInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Scaffold a new scenario configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := scaffolder.NewScaffolder(scaffolder.ExampleConfig(), cmd.OutOrStdout())

			err := sc.Scaffold(output, force)
			if err != nil {
				return fmt.Errorf("failed to scaffold scenario project: %w", err)
			}

			notify.Successf(cmd.OutOrStdout(), "scenario project initialized")

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "Directory to place the generated files in")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}
