package engine

import (
	"cmp"
	"slices"

	"github.com/mww/league_engine/model"
)

type fullLeagueAggregator struct{}

// aggregate sums every period score per team and, when the league is
// segmented, awards the configured bonus to each segment's leader. Rank is
// total descending with ties left in team-ID order.
func (a fullLeagueAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	rows := make([]model.FullLeagueRow, 0, len(in.Teams))
	points := make(map[string]float64, len(in.Teams))

	for _, week := range sortedWeeks(in.PeriodScores) {
		for _, team := range in.Teams {
			points[team.ID] += in.PeriodScores[week][team.ID]
		}
	}

	bonuses := segmentBonuses(l.Settings.Segments, in)

	for _, team := range in.Teams {
		row := model.FullLeagueRow{
			TeamID:       team.ID,
			Points:       round2(points[team.ID]),
			SegmentBonus: bonuses[team.ID],
		}
		row.Total = round2(row.Points + row.SegmentBonus)
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(x, y model.FullLeagueRow) int {
		if c := cmp.Compare(y.Total, x.Total); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return &model.Standings{Format: model.FORMAT_FULL_LEAGUE, FullLeague: rows}, nil
}

// segmentBonuses splits weeks 1..P into contiguous segments, remainder
// weeks going to the earliest segments, and pays the configured bonus to
// each segment's top scorer. A scoring tie goes to the team listed first.
func segmentBonuses(s model.SegmentSettings, in *StandingsInput) map[string]float64 {
	bonuses := make(map[string]float64)
	if s.Count < 1 || s.Bonus == 0 || len(in.PeriodScores) == 0 {
		return bonuses
	}

	weeks := sortedWeeks(in.PeriodScores)
	last := weeks[len(weeks)-1]
	if s.Count > last {
		return bonuses
	}

	base := last / s.Count
	rem := last % s.Count

	start := 1
	for seg := 0; seg < s.Count; seg++ {
		length := base
		if seg < rem {
			length++
		}
		end := start + length - 1

		leader := ""
		var best float64
		for _, team := range in.Teams {
			var total float64
			for w := start; w <= end; w++ {
				total += in.PeriodScores[w][team.ID]
			}
			if leader == "" || total > best {
				leader = team.ID
				best = total
			}
		}
		if leader != "" {
			bonuses[leader] += s.Bonus
		}

		start = end + 1
	}

	return bonuses
}
