package engine

import (
	"github.com/mww/league_engine/model"
)

// byeTeamID is the synthetic entrant appended when the team count is odd.
// Pairings against it are dropped from the emitted schedule.
const byeTeamID = ""

// GenerateSchedule produces a round-robin schedule for the given team IDs
// using the circle method: the first team stays fixed while the rest rotate
// one position each week. The result is deterministic for a given input
// ordering.
//
// When periods exceeds one full rotation (team count - 1 for even counts)
// the rotation wraps and pairings repeat; the generator does not
// deduplicate. Callers that want exactly one round robin must bound periods
// themselves.
func GenerateSchedule(teamIDs []string, periods int) []model.SchedulePeriod {
	if len(teamIDs) < 2 || periods < 1 {
		return []model.SchedulePeriod{}
	}

	circle := make([]string, len(teamIDs))
	copy(circle, teamIDs)
	if len(circle)%2 != 0 {
		circle = append(circle, byeTeamID)
	}
	n := len(circle)

	schedule := make([]model.SchedulePeriod, 0, periods)
	for p := 0; p < periods; p++ {
		period := model.SchedulePeriod{Week: p + 1}

		for i := 0; i < n/2; i++ {
			home, away := circle[i], circle[n-1-i]
			// The fixed seat alternates venues by week; every other pairing
			// is hosted by the top half of the circle. Rotation carries each
			// team through both halves, keeping home counts balanced.
			if i == 0 && p%2 != 0 {
				home, away = away, home
			}
			if home == byeTeamID || away == byeTeamID {
				continue
			}
			period.Matchups = append(period.Matchups, model.Matchup{
				Week:   p + 1,
				HomeID: home,
				AwayID: away,
			})
		}

		schedule = append(schedule, period)
		circle = rotate(circle)
	}

	return schedule
}

// rotate keeps circle[0] fixed and moves every other entry one position
// clockwise: the last entry wraps around to position 1.
func rotate(circle []string) []string {
	n := len(circle)
	next := make([]string, n)
	next[0] = circle[0]
	next[1] = circle[n-1]
	copy(next[2:], circle[1:n-1])
	return next
}
