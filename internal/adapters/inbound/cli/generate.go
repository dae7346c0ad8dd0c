package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antekerwin/jeki/internal/adapters/outbound/tui"
	"github.com/antekerwin/jeki/internal/domain"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		project    string
		style      string
		request    string
		seed       int64
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and score a post about a project",
		Long: "Generate a post draft about a project in one of the prompt styles (" +
			strings.Join(styleKeys(), ", ") + ") and score it.",
		Example: `  jeki generate --project Monad --style data-driven
  jeki generate --project Base --request "compare fees with other L2s" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, seed)
			if err != nil {
				return err
			}
			defer a.close()

			gen, err := a.services.Generate.Generate(cmd.Context(), domain.GenerateRequest{
				Project:       project,
				PromptType:    style,
				CustomRequest: request,
			})
			if errors.Is(err, domain.ErrEmptyProject) {
				return fmt.Errorf("--project is required: %w", err)
			}
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, gen)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderGeneration(strings.TrimSpace(project), gen))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project to write about (required)")
	cmd.Flags().StringVarP(&style, "style", "s", domain.StyleCustom, "Prompt style")
	cmd.Flags().StringVarP(&request, "request", "r", "", "Custom request for the custom style")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible drafts (0 uses generator.seed or the clock)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output generation as JSON")

	return cmd
}

func styleKeys() []string {
	styles := domain.PromptStyles()
	keys := make([]string, len(styles))
	for i, s := range styles {
		keys[i] = s.Key
	}
	return keys
}
