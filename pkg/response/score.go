package response

import (
	"fmt"
	"strconv"
	"strings"
)

// Score bounds on the 0-10 NPS scale.
const (
	MinScore = 0
	MaxScore = 10
)

// Category is the NPS bucket a score falls into.
type Category string

const (
	Promoter  Category = "Promoter"  // 9-10
	Passive   Category = "Passive"   // 7-8
	Detractor Category = "Detractor" // 0-6
)

// CategoryOf buckets a score. Scores outside 0-10 are not checked here.
func CategoryOf(score int) Category {
	switch {
	case score >= 9:
		return Promoter
	case score >= 7:
		return Passive
	default:
		return Detractor
	}
}

// ParseScore reads a score query parameter.
func ParseScore(s string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScore, s)
	}
	if score < MinScore || score > MaxScore {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	return score, nil
}
