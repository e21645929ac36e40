package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/mww/league_engine/model"
)

var (
	ErrBuybackNotAllowed   = errors.New("league does not allow buybacks")
	ErrTeamNotEliminated   = errors.New("team is not eliminated")
	ErrBuybackLimitReached = errors.New("team has used all of its buybacks")
)

type survivorAggregator struct{}

// aggregate replays the season week by week: each week the configured
// number of lowest-scoring teams among those still playing is eliminated,
// and buyback records revive teams after the week they were eliminated.
// The replay stops eliminating once a single team remains.
//
// Elimination ties break deterministically: equal low scores are eliminated
// in team-ID order up to the configured count, so a week never eliminates
// more teams than configured.
func (a survivorAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	perWeek := l.Settings.Survivor.EliminationsPerPeriod
	if perWeek < 1 {
		perWeek = 1
	}

	type teamState struct {
		status         model.SurvivorStatus
		eliminatedWeek int
		buybacksUsed   int
	}
	states := make(map[string]*teamState, len(in.Teams))
	for _, team := range in.Teams {
		states[team.ID] = &teamState{status: model.SURVIVOR_ALIVE}
	}

	buybacksByWeek := make(map[int][]model.BuybackRecord)
	for _, b := range in.Buybacks {
		buybacksByWeek[b.Week] = append(buybacksByWeek[b.Week], b)
	}

	playing := func() []string {
		ids := make([]string, 0, len(in.Teams))
		for _, team := range in.Teams {
			if states[team.ID].status != model.SURVIVOR_ELIMINATED {
				ids = append(ids, team.ID)
			}
		}
		return ids
	}

	for _, week := range sortedWeeks(in.PeriodScores) {
		alive := playing()
		if len(alive) <= 1 {
			break
		}

		scores := in.PeriodScores[week]
		slices.SortFunc(alive, func(x, y string) int {
			if c := cmp.Compare(scores[x], scores[y]); c != 0 {
				return c
			}
			return byTeamID(x, y)
		})

		drop := perWeek
		if len(alive)-drop < 1 {
			drop = len(alive) - 1
		}
		for _, id := range alive[:drop] {
			states[id].status = model.SURVIVOR_ELIMINATED
			states[id].eliminatedWeek = week
		}

		for _, b := range buybacksByWeek[week] {
			s := states[b.TeamID]
			if s == nil || s.status != model.SURVIVOR_ELIMINATED {
				continue
			}
			s.status = model.SURVIVOR_BUYBACK
			s.eliminatedWeek = 0
			s.buybacksUsed++
		}
	}

	// Buybacks recorded for a week that has no scores yet still revive the
	// team so the roster is right before the next period is played.
	weeks := sortedWeeks(in.PeriodScores)
	lastScored := 0
	if len(weeks) > 0 {
		lastScored = weeks[len(weeks)-1]
	}
	for _, b := range in.Buybacks {
		if b.Week <= lastScored {
			continue
		}
		s := states[b.TeamID]
		if s == nil || s.status != model.SURVIVOR_ELIMINATED {
			continue
		}
		s.status = model.SURVIVOR_BUYBACK
		s.eliminatedWeek = 0
		s.buybacksUsed++
	}

	rows := make([]model.SurvivorRow, 0, len(in.Teams))
	for _, team := range in.Teams {
		s := states[team.ID]
		rows = append(rows, model.SurvivorRow{
			TeamID:         team.ID,
			Status:         s.status,
			EliminatedWeek: s.eliminatedWeek,
			BuybacksUsed:   s.buybacksUsed,
		})
	}

	// Survivors outrank the eliminated; among the eliminated, lasting
	// longer is better.
	slices.SortStableFunc(rows, func(x, y model.SurvivorRow) int {
		if c := cmp.Compare(survivalKey(y), survivalKey(x)); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return &model.Standings{Format: model.FORMAT_SURVIVOR, Survivor: rows}, nil
}

func survivalKey(r model.SurvivorRow) int {
	if r.Status != model.SURVIVOR_ELIMINATED {
		return int(^uint(0) >> 1)
	}
	return r.EliminatedWeek
}

// SurvivorBuyback validates a buy-back request against the current survivor
// standings and returns the record to apply. On any rejection the prior
// state is untouched: nothing is recorded.
func SurvivorBuyback(l *model.League, rows []model.SurvivorRow, teamID string, week int) (model.BuybackRecord, error) {
	if !l.Settings.Survivor.BuybackAllowed {
		return model.BuybackRecord{}, ErrBuybackNotAllowed
	}

	for _, r := range rows {
		if r.TeamID != teamID {
			continue
		}
		if r.Status != model.SURVIVOR_ELIMINATED {
			return model.BuybackRecord{}, ErrTeamNotEliminated
		}
		if r.BuybacksUsed >= l.Settings.Survivor.MaxBuybacksPerTeam {
			return model.BuybackRecord{}, ErrBuybackLimitReached
		}
		if week < r.EliminatedWeek {
			return model.BuybackRecord{}, fmt.Errorf("cannot buy back for week %d before elimination in week %d", week, r.EliminatedWeek)
		}
		return model.BuybackRecord{TeamID: teamID, Week: week}, nil
	}

	return model.BuybackRecord{}, fmt.Errorf("team %s is not in the league", teamID)
}
