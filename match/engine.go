package match

import (
	"fmt"
	"sort"

	"beachsafe-lostandfound/dao"
)

// DefaultThreshold is the minimum score a candidate needs to show up in
// match results. Empirically chosen, not derived; override via config.
const DefaultThreshold = 40

// CandidateSource feeds the engine reports in a given status. *dao.Store
// satisfies it.
type CandidateSource interface {
	ListByStatus(status dao.Status) ([]dao.LostItem, error)
}

// Match pairs a candidate report with its similarity score so callers can
// show ranked suggestions.
type Match struct {
	Item  dao.LostItem
	Score int
}

// Engine produces ranked match suggestions for a report by scoring it
// against every report of the opposite status.
type Engine struct {
	source    CandidateSource
	Threshold int
	Weights   Weights
}

func NewEngine(source CandidateSource) *Engine {
	return &Engine{
		source:    source,
		Threshold: DefaultThreshold,
		Weights:   DefaultWeights(),
	}
}

// FindMatches returns candidates scoring at or above the threshold,
// highest score first. Ties go to the older report (CreatedAt ascending,
// then ID, for a total order). A claimed or resolved target gets an empty
// result, never an error: closed reports are done matching.
func (e *Engine) FindMatches(target dao.LostItem) ([]Match, error) {
	var opposite dao.Status
	switch target.Status {
	case dao.StatusLost:
		opposite = dao.StatusFound
	case dao.StatusFound:
		opposite = dao.StatusLost
	default:
		return nil, nil
	}

	candidates, err := e.source.ListByStatus(opposite)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}

	var matches []Match
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		s := Score(target, c, e.Weights)
		if s >= e.threshold() {
			matches = append(matches, Match{Item: c, Score: s})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if !matches[i].Item.CreatedAt.Equal(matches[j].Item.CreatedAt) {
			return matches[i].Item.CreatedAt.Before(matches[j].Item.CreatedAt)
		}
		return matches[i].Item.ID < matches[j].Item.ID
	})
	return matches, nil
}

func (e *Engine) threshold() int {
	if e.Threshold <= 0 {
		return DefaultThreshold
	}
	return e.Threshold
}
