package engine

import (
	"cmp"
	"slices"

	"github.com/mww/league_engine/model"
)

type rotisserieAggregator struct{}

// aggregate ranks every team within each category and awards
// (numTeams - rank + 1) points, so first place in a category is always
// worth the full team count and the category points always sum to
// n*(n+1)/2. The final rank is the rank-sum total descending.
func (a rotisserieAggregator) aggregate(l *model.League, in *StandingsInput) (*model.Standings, error) {
	n := len(in.Teams)
	rows := make(map[string]*model.RotisserieRow, n)
	for _, team := range in.Teams {
		rows[team.ID] = &model.RotisserieRow{
			TeamID:     team.ID,
			Categories: make(map[string]model.CategoryScore, len(l.Settings.Categories)),
		}
	}

	for _, category := range l.Settings.Categories {
		values := in.CategoryValues[category.Key]

		type entry struct {
			teamID string
			value  float64
		}
		entries := make([]entry, 0, n)
		for _, team := range in.Teams {
			// Missing values count as zero, not as an error.
			entries = append(entries, entry{teamID: team.ID, value: values[team.ID]})
		}

		slices.SortStableFunc(entries, func(x, y entry) int {
			var c int
			if category.LowerIsBetter {
				c = cmp.Compare(x.value, y.value)
			} else {
				c = cmp.Compare(y.value, x.value)
			}
			if c != 0 {
				return c
			}
			return byTeamID(x.teamID, y.teamID)
		})

		for i, e := range entries {
			rank := i + 1
			rows[e.teamID].Categories[category.Key] = model.CategoryScore{
				Value:  e.value,
				Rank:   rank,
				Points: n - rank + 1,
			}
		}
	}

	ordered := make([]model.RotisserieRow, 0, n)
	for _, team := range in.Teams {
		r := rows[team.ID]
		for _, score := range r.Categories {
			r.Total += score.Points
		}
		ordered = append(ordered, *r)
	}

	slices.SortStableFunc(ordered, func(x, y model.RotisserieRow) int {
		if c := cmp.Compare(y.Total, x.Total); c != 0 {
			return c
		}
		return byTeamID(x.TeamID, y.TeamID)
	})
	for i := range ordered {
		ordered[i].Rank = i + 1
	}

	return &model.Standings{Format: model.FORMAT_ROTISSERIE, Rotisserie: ordered}, nil
}
