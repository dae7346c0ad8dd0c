package cli

import (
	mcpadapter "github.com/antekerwin/jeki/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the jeki MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start jeki MCP server (stdio)",
		Long:  "Start the jeki MCP server using stdio transport. This lets AI assistants score drafts, generate posts and read the rule table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, 0)
			if err != nil {
				return err
			}
			defer a.close()

			s := mcpadapter.NewJekiMCPServer(a.services)
			return server.ServeStdio(s)
		},
	}
}
