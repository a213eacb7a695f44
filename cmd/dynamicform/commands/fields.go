package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynamicform/pkg/schema"
)

func newFieldsCommand() *cobra.Command {
	var (
		document  string
		component string
		property  string
		asYAML    bool
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Derive a widget field list from an OpenAPI component",
		Example: `  dynamicform fields --openapi api.yaml --schema Customer --property addresses
  dynamicform fields --openapi api.yaml --schema Address --yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := printer{w: cmd.ErrOrStderr()}
			if strings.TrimSpace(document) == "" || strings.TrimSpace(component) == "" {
				return out.fail("Missing flags", fmt.Errorf("--openapi and --schema are required"))
			}

			data, err := os.ReadFile(document)
			if err != nil {
				return out.fail("Failed to read OpenAPI document", err)
			}
			fields, err := schema.FieldsFromOpenAPI(cmd.Context(), data, component, property)
			if err != nil {
				return out.fail("Failed to derive fields", err)
			}

			if asYAML {
				payload, err := yaml.Marshal(map[string][]string{"fields": fields})
				if err != nil {
					return out.fail("Failed to encode fields", err)
				}
				_, err = cmd.OutOrStdout().Write(payload)
				return err
			}
			for _, field := range fields {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), field); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&document, "openapi", "", "OpenAPI 3 document (yaml or json)")
	cmd.Flags().StringVar(&component, "schema", "", "component schema name")
	cmd.Flags().StringVar(&property, "property", "", "array property whose items define the fields")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print a YAML fields block")
	return cmd
}
