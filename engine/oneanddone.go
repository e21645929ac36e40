package engine

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mww/league_engine/model"
)

var (
	ErrPickAlreadyUsed   = errors.New("player has already been picked by this team")
	ErrWeekAlreadyPicked = errors.New("team already locked a pick for this week")
)

type oneAndDoneAggregator struct{}

// aggregate totals each team's locked picks: the pick's raw tournament
// points times the tier multiplier fixed at pick time, times the major
// multiplier when the week is flagged as a major. A pick with no points
// recorded contributes zero.
func (a oneAndDoneAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	rows := make(map[string]*model.OneAndDoneRow, len(in.Teams))
	for _, team := range in.Teams {
		rows[team.ID] = &model.OneAndDoneRow{TeamID: team.ID}
	}

	picks := make([]model.Pick, len(in.Picks))
	copy(picks, in.Picks)
	slices.SortStableFunc(picks, func(x, y model.Pick) int {
		if c := cmp.Compare(x.Week, y.Week); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})

	for _, p := range picks {
		row := rows[p.TeamID]
		if row == nil {
			continue
		}

		raw := in.PickPoints[p.Week][p.PlayerID]
		multiplier := p.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		points := raw * multiplier
		if l.Settings.OneAndDone.IsMajorWeek(p.Week) && l.Settings.OneAndDone.MajorMultiplier > 0 {
			points *= l.Settings.OneAndDone.MajorMultiplier
		}

		row.Total = round2(row.Total + round2(points))
		row.UsedPicks = append(row.UsedPicks, p.PlayerID)
	}

	ordered := make([]model.OneAndDoneRow, 0, len(in.Teams))
	for _, team := range in.Teams {
		ordered = append(ordered, *rows[team.ID])
	}

	slices.SortStableFunc(ordered, func(x, y model.OneAndDoneRow) int {
		if c := cmp.Compare(y.Total, x.Total); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})
	for i := range ordered {
		ordered[i].Rank = i + 1
	}

	return &model.Standings{Format: model.FORMAT_ONE_AND_DONE, OneAndDone: ordered}, nil
}

// LockPick validates a one-and-done selection against the team's existing
// picks and returns the new pick value with its tier multiplier fixed from
// the player's world rank right now. Reusing a player from any prior week
// is rejected, leaving the team's picks untouched.
func LockPick(l *model.League, existing []model.Pick, teamID, playerID string, week, worldRank int, now time.Time) (model.Pick, error) {
	if playerID == "" {
		return model.Pick{}, errors.New("a player must be selected")
	}
	if week < 1 {
		return model.Pick{}, fmt.Errorf("week %d is not valid", week)
	}

	for _, p := range existing {
		if p.TeamID != teamID {
			continue
		}
		if p.PlayerID == playerID {
			return model.Pick{}, ErrPickAlreadyUsed
		}
		if p.Week == week {
			return model.Pick{}, ErrWeekAlreadyPicked
		}
	}

	return model.Pick{
		TeamID:     teamID,
		Week:       week,
		PlayerID:   playerID,
		WorldRank:  worldRank,
		Multiplier: l.Settings.OneAndDone.TierMultiplier(worldRank),
		Locked:     now,
	}, nil
}
