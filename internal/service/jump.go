package service

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// JumpService finds the slide a typed query most likely refers to.
type JumpService struct {
	// MaxDistance bounds the edit distance of fuzzy matches. Zero derives a
	// bound from the query length.
	MaxDistance int
}

// Match returns the index of the best matching title. Exact matches beat
// prefix matches, which beat substring matches, which beat typo-tolerant
// matches. Ties keep the earliest title.
func (s JumpService) Match(query string, titles []string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, false
	}
	limit := s.MaxDistance
	if limit <= 0 {
		limit = max(1, utf8.RuneCountInString(q)/3)
	}

	best, bestScore := -1, 0
	for i, raw := range titles {
		score, ok := s.score(q, strings.ToLower(strings.TrimSpace(raw)), limit)
		if !ok {
			continue
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

func (s JumpService) score(q, title string, limit int) (int, bool) {
	switch {
	case title == q:
		return 0, true
	case strings.HasPrefix(title, q):
		return 1, true
	case strings.Contains(title, q):
		return 2, true
	}
	d := levenshtein.ComputeDistance(q, title)
	if p := runePrefix(title, utf8.RuneCountInString(q)); p != title {
		d = min(d, levenshtein.ComputeDistance(q, p))
	}
	if d > limit {
		return 0, false
	}
	return 3 + d, true
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
