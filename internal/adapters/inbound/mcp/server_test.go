package mcp_test

import (
	"context"
	"testing"

	mcpadapter "github.com/antekerwin/jeki/internal/adapters/inbound/mcp"
	"github.com/antekerwin/jeki/internal/application"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/generator"
	"github.com/antekerwin/jeki/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLeaderboard []domain.Project

func (s staticLeaderboard) Projects(context.Context) []domain.Project { return s }

func testServices() *application.Services {
	return application.NewServices(
		scoring.MustNewScorer(domain.DefaultRules()),
		generator.NewSeeded(1),
		staticLeaderboard(domain.FallbackProjects()),
		nil,
	)
}

func TestNewJekiMCPServer(t *testing.T) {
	s := mcpadapter.NewJekiMCPServer(testServices())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewJekiMCPServer(testServices())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"jeki_analyze",
		"jeki_generate",
		"jeki_leaderboard",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
