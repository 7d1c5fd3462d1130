package cmd

import (
	"fmt"

	"github.com/provisio-dev/provisio/pkg/cli/helpers"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and
// subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provisio",
		Short: "Provisio manages declarative VM test scenario configurations",
		Long: `Provisio manages declarative test scenario configurations for ` +
			`provisioning and verifying groups of virtual machines.`,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		helpers.TimingFlagName,
		false,
		"Show per-activity timing output",
	)

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewSequenceCmd())
	cmd.AddCommand(NewFmtCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// Execute runs the provided root command.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying help: %w", err)
	}

	return nil
}
