package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antekerwin/jeki/internal/adapters/outbound/tui"
	"github.com/antekerwin/jeki/internal/domain"
)

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var (
		filePath   string
		jsonOutput bool
		ciMode     bool
		minScore   float64
		badge      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Score a post draft",
		Long: "Score a post draft and print its quality report. The text comes from the arguments, " +
			"from --file, or from stdin when the only argument is \"-\".",
		Example: `  jeki analyze "TVL hit $120M (+250% MoM). What do you think?"
  jeki analyze --file draft.txt --json
  cat draft.txt | jeki analyze - --ci --min 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPost(cmd, filePath, args)
			if err != nil {
				return err
			}

			a, err := buildApp(opts, 0)
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.services.Analyze.Analyze(cmd.Context(), text)
			if errors.Is(err, domain.ErrEmptyContent) {
				return fmt.Errorf("nothing to analyze: %w", err)
			}
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && report.CompositeScore < minScore {
				return fmt.Errorf("composite score %.1f is below minimum %.1f", report.CompositeScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the post from a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the composite score is below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum composite score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")

	return cmd
}

// readPost resolves the post text from --file, stdin ("-") or the arguments.
func readPost(cmd *cobra.Command, filePath string, args []string) (string, error) {
	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filePath, err)
		}
		return string(data), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return "", errors.New("no post given: pass text, --file, or - for stdin")
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, report *domain.QualityReport) {
	url := fmt.Sprintf("https://img.shields.io/badge/jeki-%.1f%%2F10-%s", report.CompositeScore, badgeColor(report.Rating))
	fmt.Fprintln(cmd.OutOrStdout(), url)
}

func badgeColor(rating string) string {
	switch rating {
	case domain.RatingExcellent:
		return "brightgreen"
	case domain.RatingGood:
		return "green"
	case domain.RatingFair:
		return "yellow"
	default:
		return "red"
	}
}
