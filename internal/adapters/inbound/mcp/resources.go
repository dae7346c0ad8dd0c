package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/antekerwin/jeki/internal/application"
	"github.com/antekerwin/jeki/internal/domain"
)

const (
	rulesURI   = "jeki://rules"
	promptsURI = "jeki://prompts"
)

// registerResources registers all jeki MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.Services) {
	// 1. jeki://rules - rule table in effect
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Scoring Rules",
			mcplib.WithResourceDescription("Keyword lists, points, weights and thresholds the scorer runs on"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(svc),
	)

	// 2. jeki://prompts - generation styles
	s.AddResource(
		mcplib.NewResource(
			promptsURI,
			"Prompt Styles",
			mcplib.WithResourceDescription("Generation styles accepted by jeki_generate"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePromptsResource(),
	)
}

func handleRulesResource(svc *application.Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(rulesURI, svc.Analyze.Rules())
	}
}

func handlePromptsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(promptsURI, domain.PromptStyles())
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
