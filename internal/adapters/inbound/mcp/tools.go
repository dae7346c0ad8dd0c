package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/antekerwin/jeki/internal/application"
	"github.com/antekerwin/jeki/internal/domain"
)

// registerTools registers all jeki MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.Services) {
	// 1. jeki_analyze
	s.AddTool(
		mcplib.NewTool("jeki_analyze",
			mcplib.WithDescription("Scores a post draft and returns the full quality report as JSON"),
			mcplib.WithString("content",
				mcplib.Required(),
				mcplib.Description("The post text to score"),
			),
		),
		handleAnalyze(svc),
	)

	// 2. jeki_generate
	s.AddTool(
		mcplib.NewTool("jeki_generate",
			mcplib.WithDescription("Generates a post draft about a project and scores it"),
			mcplib.WithString("project",
				mcplib.Required(),
				mcplib.Description("Project name, e.g. Monad"),
			),
			mcplib.WithString("prompt_type",
				mcplib.Description("One of data-driven, competitive, thesis, custom (default custom)"),
			),
			mcplib.WithString("custom_request",
				mcplib.Description("Free-form request, used with the custom style"),
			),
		),
		handleGenerate(svc),
	)

	// 3. jeki_leaderboard
	s.AddTool(
		mcplib.NewTool("jeki_leaderboard",
			mcplib.WithDescription("Lists the projects currently on the leaderboard"),
		),
		handleLeaderboard(svc),
	)
}

func handleAnalyze(svc *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		content, err := request.RequireString("content")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Analyze.Analyze(ctx, content)
		if errors.Is(err, domain.ErrEmptyContent) {
			return errorResult("content required"), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleGenerate(svc *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		promptType, _ := args["prompt_type"].(string)
		customRequest, _ := args["custom_request"].(string)

		gen, err := svc.Generate.Generate(ctx, domain.GenerateRequest{
			Project:       project,
			PromptType:    promptType,
			CustomRequest: customRequest,
		})
		if errors.Is(err, domain.ErrEmptyProject) {
			return errorResult("project required"), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(gen)
	}
}

func handleLeaderboard(svc *application.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Home.Projects(ctx))
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
