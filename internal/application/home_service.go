package application

import (
	"context"

	"github.com/antekerwin/jeki/internal/domain"
)

// HomeService assembles the landing payload.
type HomeService struct {
	leaderboard domain.LeaderboardSource
}

func NewHomeService(leaderboard domain.LeaderboardSource) *HomeService {
	return &HomeService{leaderboard: leaderboard}
}

// Home never fails: the leaderboard source degrades to its fallback list.
func (s *HomeService) Home(ctx context.Context) domain.Home {
	return domain.Home{
		Projects: s.Projects(ctx),
		Prompts:  domain.PromptStyles(),
	}
}

// Projects returns the leaderboard, or the static fallback when the source
// reports nothing.
func (s *HomeService) Projects(ctx context.Context) []domain.Project {
	projects := s.leaderboard.Projects(ctx)
	if len(projects) == 0 {
		return domain.FallbackProjects()
	}
	return projects
}
