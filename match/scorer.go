package match

import (
	"strings"
	"time"

	"beachsafe-lostandfound/dao"
)

// MaxScore caps the similarity score. The zero from the complementarity
// gate is returned as-is, everything else lands in [0, MaxScore].
const MaxScore = 100

// Weights tune the similarity bonuses. The defaults are deliberately
// simple, explainable numbers: this is a ranking heuristic, not a
// probability.
type Weights struct {
	Category   int `mapstructure:"category"`    // same category
	Location   int `mapstructure:"location"`    // same beach
	Date       int `mapstructure:"date"`        // dates within the window
	Tag        int `mapstructure:"tag"`         // per shared tag
	Token      int `mapstructure:"token"`       // per shared title/description word
	WindowDays int `mapstructure:"window_days"` // temporal bonus window, inclusive
}

func DefaultWeights() Weights {
	return Weights{
		Category:   20,
		Location:   15,
		Date:       15,
		Tag:        5,
		Token:      2,
		WindowDays: 3,
	}
}

// Score computes the similarity of two reports. The pair must be exactly
// one lost and one found item; any other combination scores 0 outright,
// so claimed and resolved reports never match anything.
func Score(a, b dao.LostItem, w Weights) int {
	if !complementary(a.Status, b.Status) {
		return 0
	}

	score := 0
	if a.Category == b.Category {
		score += w.Category
	}
	if a.BeachID == b.BeachID {
		score += w.Location
	}
	if withinWindow(a.Date, b.Date, w.WindowDays) {
		score += w.Date
	}
	score += w.Tag * overlap(a.TagList(), b.TagList())
	score += w.Token * overlap(Tokenize(a), Tokenize(b))

	if score > MaxScore {
		score = MaxScore
	}
	return score
}

func complementary(a, b dao.Status) bool {
	return (a == dao.StatusLost && b == dao.StatusFound) ||
		(a == dao.StatusFound && b == dao.StatusLost)
}

func withinWindow(a, b time.Time, days int) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= time.Duration(days)*24*time.Hour
}

// Tokenize splits an item's title and description into lowercase
// whitespace tokens and keeps the ones longer than 3 characters. Shared
// tokens are the naive text-similarity signal; no stemming, no synonyms.
func Tokenize(item dao.LostItem) []string {
	fields := strings.Fields(strings.ToLower(item.Title + " " + item.Description))
	var tokens []string
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if len(f) <= 3 || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}

// overlap counts values present in both sets. Inputs are already
// deduplicated.
func overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	n := 0
	for _, v := range b {
		if set[v] {
			n++
		}
	}
	return n
}
