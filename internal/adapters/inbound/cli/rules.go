package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antekerwin/jeki/internal/adapters/outbound/config"
	"github.com/antekerwin/jeki/internal/adapters/outbound/tui"
)

func newRulesCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the rule table in effect",
		Long: "Print the keyword lists, points, weights and thresholds the scorer runs on. " +
			"The YAML output is a valid --rules file to start an override from.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, 0)
			if err != nil {
				return err
			}
			defer a.close()

			switch {
			case jsonOutput:
				return renderJSON(cmd, a.rules)
			case yamlOutput:
				data, err := config.MarshalRules(a.rules)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(a.rules))
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output rules as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
