package scoring

import (
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
)

// containsAny reports whether any of the phrases is a substring of s.
func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// countPresent counts the distinct phrases that occur in s. Repeats of the
// same phrase count once.
func countPresent(s string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(s, p) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// gated builds a sub-metric worth points that is earned only when ok holds.
func gated(name string, points int, ok bool, pass, fail string) domain.SubMetric {
	sm := domain.SubMetric{Name: name, Points: points, Detail: fail}
	if ok {
		sm.Score = points
		sm.Detail = pass
	}
	return sm
}

// sumCategory totals earned points and clamps the result to [0, limit].
func sumCategory(cat domain.CategoryScore, limit int) domain.CategoryScore {
	total := 0
	for _, sm := range cat.SubMetrics {
		total += sm.Score
	}
	cat.Score = clamp(total, 0, limit)
	return cat
}
