package engine

import (
	"cmp"
	"slices"

	"github.com/mww/league_engine/model"
)

type headToHeadAggregator struct{}

// aggregate folds every completed matchup into win/loss/tie records and
// ranks by winning percentage, breaking ties with the league's configured
// tiebreaker chain. Teams in the same division also accumulate an
// in-division record, which never alters the overall rank on its own.
func (a headToHeadAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	divisions := make(map[string]string, len(in.Teams))
	for _, team := range in.Teams {
		divisions[team.ID] = team.Division
	}

	rows := make(map[string]*model.HeadToHeadRow, len(in.Teams))
	for _, team := range in.Teams {
		rows[team.ID] = &model.HeadToHeadRow{TeamID: team.ID}
	}

	for _, m := range in.Matchups {
		if !m.Completed {
			continue
		}
		home, away := rows[m.HomeID], rows[m.AwayID]
		if home == nil || away == nil {
			// A result for a team no longer in the league contributes
			// nothing rather than failing the whole aggregation.
			continue
		}

		home.PointsFor += m.HomeScore
		home.PointsAgainst += m.AwayScore
		away.PointsFor += m.AwayScore
		away.PointsAgainst += m.HomeScore

		sameDivision := divisions[m.HomeID] != "" && divisions[m.HomeID] == divisions[m.AwayID]

		switch m.Winner() {
		case m.HomeID:
			home.Wins++
			away.Losses++
			if sameDivision {
				home.DivisionWins++
				away.DivisionLosses++
			}
		case m.AwayID:
			away.Wins++
			home.Losses++
			if sameDivision {
				away.DivisionWins++
				home.DivisionLosses++
			}
		default:
			home.Ties++
			away.Ties++
			if sameDivision {
				home.DivisionTies++
				away.DivisionTies++
			}
		}
	}

	ordered := make([]model.HeadToHeadRow, 0, len(in.Teams))
	for _, team := range in.Teams {
		r := rows[team.ID]
		r.PointsFor = round2(r.PointsFor)
		r.PointsAgainst = round2(r.PointsAgainst)
		ordered = append(ordered, *r)
	}

	ordered = rankHeadToHead(ordered, in.Matchups, l.Settings.Tiebreakers)
	for i := range ordered {
		ordered[i].Rank = i + 1
	}

	return &model.Standings{Format: model.FORMAT_HEAD2HEAD, HeadToHead: ordered}, nil
}

// rankHeadToHead orders rows by winning percentage, then resolves each tied
// group with the tiebreaker chain. A tiebreaker only separates teams still
// tied after the ones before it.
func rankHeadToHead(rows []model.HeadToHeadRow, matchups []model.Matchup, chain []model.Tiebreaker) []model.HeadToHeadRow {
	slices.SortStableFunc(rows, func(x, y model.HeadToHeadRow) int {
		if c := cmp.Compare(y.WinPct(), x.WinPct()); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})

	out := make([]model.HeadToHeadRow, 0, len(rows))
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].WinPct() == rows[start].WinPct() {
			end++
		}
		out = append(out, breakTies(rows[start:end], matchups, chain, 0)...)
		start = end
	}
	return out
}

func breakTies(tied []model.HeadToHeadRow, matchups []model.Matchup, chain []model.Tiebreaker, depth int) []model.HeadToHeadRow {
	if len(tied) <= 1 || depth >= len(chain) {
		return tied
	}

	keys := tiebreakerKeys(tied, matchups, chain[depth])

	group := make([]model.HeadToHeadRow, len(tied))
	copy(group, tied)
	slices.SortStableFunc(group, func(x, y model.HeadToHeadRow) int {
		if c := cmp.Compare(keys[y.TeamID], keys[x.TeamID]); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})

	// Teams separated by this tiebreaker are settled; subsets that remain
	// tied move on to the next link in the chain.
	out := make([]model.HeadToHeadRow, 0, len(group))
	for start := 0; start < len(group); {
		end := start + 1
		for end < len(group) && keys[group[end].TeamID] == keys[group[start].TeamID] {
			end++
		}
		out = append(out, breakTies(group[start:end], matchups, chain, depth+1)...)
		start = end
	}
	return out
}

// tiebreakerKeys computes the comparison value for each tied team under one
// tiebreaker. Higher is always better: points against is kept
// higher-is-better as a strength-of-schedule measure.
func tiebreakerKeys(tied []model.HeadToHeadRow, matchups []model.Matchup, tb model.Tiebreaker) map[string]float64 {
	keys := make(map[string]float64, len(tied))

	switch tb {
	case model.TIEBREAK_POINTS_FOR:
		for _, r := range tied {
			keys[r.TeamID] = r.PointsFor
		}
	case model.TIEBREAK_POINTS_AGAINST:
		for _, r := range tied {
			keys[r.TeamID] = r.PointsAgainst
		}
	case model.TIEBREAK_DIVISION_RECORD:
		for _, r := range tied {
			games := r.DivisionWins + r.DivisionLosses + r.DivisionTies
			if games > 0 {
				keys[r.TeamID] = (float64(r.DivisionWins) + 0.5*float64(r.DivisionTies)) / float64(games)
			}
		}
	case model.TIEBREAK_HEAD_TO_HEAD:
		inGroup := make(map[string]bool, len(tied))
		for _, r := range tied {
			inGroup[r.TeamID] = true
		}
		wins := make(map[string]float64, len(tied))
		games := make(map[string]float64, len(tied))
		for _, m := range matchups {
			if !m.Completed || !inGroup[m.HomeID] || !inGroup[m.AwayID] {
				continue
			}
			games[m.HomeID]++
			games[m.AwayID]++
			switch m.Winner() {
			case m.HomeID:
				wins[m.HomeID]++
			case m.AwayID:
				wins[m.AwayID]++
			default:
				wins[m.HomeID] += 0.5
				wins[m.AwayID] += 0.5
			}
		}
		for _, r := range tied {
			if games[r.TeamID] > 0 {
				keys[r.TeamID] = wins[r.TeamID] / games[r.TeamID]
			}
		}
	}

	return keys
}
