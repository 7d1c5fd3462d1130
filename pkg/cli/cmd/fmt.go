package cmd

import (
	"fmt"

	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/provisio-dev/provisio/pkg/fsutil"
	yamlmarshaller "github.com/provisio-dev/provisio/pkg/io/marshaller/yaml"
	"github.com/provisio-dev/provisio/pkg/utils/notify"
	"github.com/spf13/cobra"
)

// NewFmtCmd creates the fmt command that rewrites the scenario configuration
// in canonical form. Loading and re-serializing a canonical document is a
// no-op.
func NewFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:          "fmt",
		Short:        "Canonicalize the scenario configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, manager, err := loadScenario(cmd, true)
			if err != nil {
				return err
			}

			marshaller := yamlmarshaller.NewMarshaller[v1alpha1.Config]()

			canonical, err := marshaller.Marshal(*config)
			if err != nil {
				return fmt.Errorf("failed to canonicalize scenario config: %w", err)
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), canonical)

				return nil
			}

			// Rewrite the file the loader actually resolved, which may come
			// from the config flag, the environment, or the search path.
			path := manager.ConfigFileUsed()

			_, err = fsutil.TryWriteFile(canonical, path, true)
			if err != nil {
				return fmt.Errorf("failed to rewrite scenario config: %w", err)
			}

			notify.Successf(cmd.OutOrStdout(), "rewrote '%s' in canonical form", path)

			return nil
		},
	}

	addConfigFlag(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file instead of printing to stdout")

	return cmd
}
