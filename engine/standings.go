package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mww/league_engine/model"
)

// StandingsInput carries everything the aggregators fold over. Only the
// fields relevant to the league's format are consulted; the rest may be nil.
// Missing or partial data is always treated as zero-contribution: standings
// are computed for every team in Teams no matter how sparse the results are.
type StandingsInput struct {
	Teams []model.Team

	// PeriodScores maps week -> team ID -> points. Used by the full-league
	// and survivor formats.
	PeriodScores map[int]map[string]float64

	// Matchups feed the head-to-head record book. Incomplete matchups are
	// skipped.
	Matchups []model.Matchup

	// CategoryValues maps category key -> team ID -> season value for
	// rotisserie leagues.
	CategoryValues map[string]map[string]float64

	// Buybacks are the survivor buyback records, in the order applied.
	Buybacks []model.BuybackRecord

	// Picks and PickPoints drive one-and-done totals: PickPoints maps
	// week -> player ID -> raw tournament points.
	Picks      []model.Pick
	PickPoints map[int]map[string]float64
}

// Standings recomputes the full format-appropriate ranking from scratch.
// Rows are never incrementally patched, so the output can never drift from
// the raw results it was derived from.
func Standings(l *model.League, in *StandingsInput) (*model.Standings, error) {
	return aggregatorFor(l.Format).aggregate(l, in)
}

// Each format gets its own aggregator variant; the dispatch below is the
// only place that maps a format tag to behavior.
type aggregator interface {
	aggregate(l *model.League, in *StandingsInput) (*model.Standings, error)
}

func aggregatorFor(format model.Format) aggregator {
	switch format {
	case model.FORMAT_FULL_LEAGUE:
		return fullLeagueAggregator{}
	case model.FORMAT_HEAD2HEAD:
		return headToHeadAggregator{}
	case model.FORMAT_ROTISSERIE:
		return rotisserieAggregator{}
	case model.FORMAT_SURVIVOR:
		return survivorAggregator{}
	case model.FORMAT_ONE_AND_DONE:
		return oneAndDoneAggregator{}
	default:
		return &nilAggregator{err: fmt.Errorf("%s is not a supported league format", format)}
	}
}

// nilAggregator exists so that aggregatorFor can always return an
// aggregator and the error surfaces on use.
type nilAggregator struct {
	err error
}

func (a *nilAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	return nil, a.err
}

// byTeamID is the shared stable tie order: teams that remain tied after all
// other comparisons keep a deterministic team-ID order.
func byTeamID(a, b string) int {
	return cmp.Compare(a, b)
}

// sortedWeeks returns the week keys of a period-score map in ascending
// order.
func sortedWeeks(scores map[int]map[string]float64) []int {
	weeks := make([]int, 0, len(scores))
	for w := range scores {
		weeks = append(weeks, w)
	}
	slices.Sort(weeks)
	return weeks
}
