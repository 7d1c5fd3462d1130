package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	v1alpha1 "github.com/provisio-dev/provisio/pkg/apis/scenario/v1alpha1"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command that prints the JSON schema for
// scenario configuration documents.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON schema for scenario configurations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reflector := jsonschema.Reflector{ExpandedStruct: true}
			schema := reflector.Reflect(&v1alpha1.Config{})

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}
