package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antekerwin/jeki/internal/adapters/inbound/cli"
	"github.com/antekerwin/jeki/internal/domain"
)

const farmingPost = "Follow me for more alpha on defi. What do you think?"

// isolate keeps commands off the network and away from the caller's JEKI_*
// environment.
func isolate(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	if handler == nil {
		handler = func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "<html>MONAD BASE MONAD</html>")
		}
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("JEKI_LEADERBOARD_URL", srv.URL)
	t.Setenv("JEKI_GENERATOR_MODE", domain.GeneratorTemplate)
	t.Setenv("JEKI_LOG_LEVEL", "error")
	t.Setenv("JEKI_RULES_FILE", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func runWithInput(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jeki dev")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "analyze", farmingPost, "--json")
	require.NoError(t, err)

	var report domain.QualityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6.2, report.CompositeScore)
	assert.Equal(t, domain.RatingFair, report.Rating)
	assert.Equal(t, 50, report.Platform.Score)
	assert.Contains(t, out, `"composite_score"`)
}

func TestAnalyzeCommand_JoinsArgs(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "analyze", "Follow", "me", "for", "more", "alpha", "on", "defi.", "What", "do", "you", "think?", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"composite_score": 6.2`)
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	isolate(t, nil)

	out, err := runWithInput(t, farmingPost, "analyze", "-", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"composite_score": 6.2`)
}

func TestAnalyzeCommand_File(t *testing.T) {
	isolate(t, nil)
	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte(farmingPost), 0o644))

	out, err := run(t, "analyze", "--file", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"composite_score": 6.2`)
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "analyze", "--file", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestAnalyzeCommand_NoText(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "analyze")
	assert.Error(t, err)

	_, err = run(t, "analyze", "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}

func TestAnalyzeCommand_CIFails(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "analyze", farmingPost, "--ci", "--min", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "6.2 is below minimum 7.0")
}

func TestAnalyzeCommand_CIPasses(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "analyze", farmingPost, "--ci", "--min", "6.2")
	assert.NoError(t, err)
}

func TestAnalyzeCommand_Badge(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "analyze", farmingPost, "--badge")
	require.NoError(t, err)
	assert.Equal(t, "https://img.shields.io/badge/jeki-6.2%2F10-yellow\n", out)
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "analyze", farmingPost)
	require.NoError(t, err)
	assert.Contains(t, out, "jeki")
	assert.Contains(t, out, "6.2 / 10")
}

func TestAnalyzeCommand_RulesOverride(t *testing.T) {
	isolate(t, nil)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [alpha]\n"), 0o644))

	out, err := run(t, "analyze", "gm", "--rules", path, "--json")
	require.NoError(t, err)

	var report domain.QualityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0, report.Features.KeywordCount)

	out, err = run(t, "analyze", farmingPost, "--rules", path, "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Features.KeywordCount)
}

func TestAnalyzeCommand_InvalidRules(t *testing.T) {
	isolate(t, nil)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [unclosed\n"), 0o644))

	_, err := run(t, "analyze", farmingPost, "--rules", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading rules")
}

func TestAnalyzeCommand_MissingRulesFlagFile(t *testing.T) {
	isolate(t, nil)
	path := filepath.Join(t.TempDir(), "rulez.yaml")

	_, err := run(t, "analyze", farmingPost, "--rules", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "loading rules")
}

func TestAnalyzeCommand_MissingConfiguredRulesFileUsesDefaults(t *testing.T) {
	isolate(t, nil)
	t.Setenv("JEKI_RULES_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	out, err := run(t, "analyze", farmingPost, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"composite_score": 6.2`)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "analyze", farmingPost, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestInvalidConfigFile(t *testing.T) {
	isolate(t, nil)
	path := filepath.Join(t.TempDir(), "jeki.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \"\"\n"), 0o644))

	_, err := run(t, "rules", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.addr")
}

func TestGenerateCommand_JSON(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "generate", "--project", "Monad", "--style", "thesis", "--seed", "42", "--json")
	require.NoError(t, err)

	var gen domain.Generation
	require.NoError(t, json.Unmarshal([]byte(out), &gen))
	assert.Contains(t, gen.Content, "Monad")
	assert.Equal(t, domain.SourceTemplate, gen.Source)
	assert.Equal(t, domain.StyleThesis, gen.Style)
	assert.Greater(t, gen.Analysis.Features.CharCount, 0)
}

func TestGenerateCommand_SeedIsReproducible(t *testing.T) {
	isolate(t, nil)

	args := []string{"generate", "--project", "Base", "--style", "data-driven", "--seed", "7", "--json"}
	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCommand_CustomRequest(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "generate", "-p", "Base", "-r", "fee comparison with other rollups", "--seed", "3", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "Base")
	assert.Contains(t, out, `"style": "custom"`)
}

func TestGenerateCommand_TUI(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "generate", "--project", "Monad", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "Monad")
	assert.Contains(t, out, "/ 10")
}

func TestGenerateCommand_RequiresProject(t *testing.T) {
	isolate(t, nil)

	_, err := run(t, "generate")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyProject)
}

func TestLeaderboardCommand_JSON(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "leaderboard", "--json")
	require.NoError(t, err)

	var projects []domain.Project
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	assert.Equal(t, []domain.Project{
		{Name: "Monad", Mindshare: "High", Category: "Layer 1"},
		{Name: "Base", Mindshare: "High", Category: "Layer 2"},
	}, projects)
}

func TestLeaderboardCommand_Fallback(t *testing.T) {
	isolate(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	out, err := run(t, "leaderboard", "--json")
	require.NoError(t, err)

	var projects []domain.Project
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	assert.Equal(t, domain.FallbackProjects(), projects)
}

func TestLeaderboardCommand_Table(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "leaderboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "Monad")
}

func TestRulesCommand(t *testing.T) {
	isolate(t, nil)

	out, err := run(t, "rules", "--json")
	require.NoError(t, err)
	var rules domain.RuleTable
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Equal(t, domain.DefaultRules().Weights, rules.Weights)

	out, err = run(t, "rules", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "keywords:")

	out, err = run(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "Scoring rules")

	_, err = run(t, "rules", "--json", "--yaml")
	assert.Error(t, err)
}

func TestCommandsExist(t *testing.T) {
	for _, args := range [][]string{
		{"mcp", "--help"},
		{"mcp", "serve", "--help"},
		{"serve", "--help"},
	} {
		cmd := cli.NewRootCmdForTest()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs(args)
		assert.NoError(t, cmd.Execute(), strings.Join(args, " "))
	}
}

func TestRootRegistersCommands(t *testing.T) {
	root := cli.NewRootCmdForTest()
	var names []string
	for _, c := range root.Commands() {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"version", "analyze", "generate", "leaderboard", "rules", "serve", "mcp"}, names)

	for _, flag := range []string{"config", "rules", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}
