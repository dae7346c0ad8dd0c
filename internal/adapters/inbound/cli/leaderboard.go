package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antekerwin/jeki/internal/adapters/outbound/tui"
)

func newLeaderboardCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "List leaderboard projects",
		Long:  "Fetch the projects currently on the leaderboard, falling back to a static list when it cannot be reached.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, 0)
			if err != nil {
				return err
			}
			defer a.close()

			projects := a.services.Home.Projects(cmd.Context())
			if jsonOutput {
				return renderJSON(cmd, projects)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLeaderboard(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output projects as JSON")

	return cmd
}
