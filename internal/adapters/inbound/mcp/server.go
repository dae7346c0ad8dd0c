package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/antekerwin/jeki/internal/application"
)

const serverVersion = "0.1.0"

// NewJekiMCPServer creates an MCP server with all jeki tools and resources
// registered on top of the shared services.
func NewJekiMCPServer(svc *application.Services) *server.MCPServer {
	s := server.NewMCPServer(
		"jeki",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
