package model

// Standings is the format-appropriate ranked row list. Exactly one of the
// row slices is populated, matching Format.
type Standings struct {
	Format     Format
	FullLeague []FullLeagueRow
	HeadToHead []HeadToHeadRow
	Rotisserie []RotisserieRow
	Survivor   []SurvivorRow
	OneAndDone []OneAndDoneRow
}

type FullLeagueRow struct {
	TeamID       string
	Rank         int
	Points       float64
	SegmentBonus float64
	// Total is Points + SegmentBonus, the value the rank is computed from.
	Total float64
}

type HeadToHeadRow struct {
	TeamID        string
	Rank          int
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64

	DivisionWins   int
	DivisionLosses int
	DivisionTies   int
}

// WinPct is the team's winning percentage with ties counted as half a win.
// Returns 0 before any games complete.
func (r *HeadToHeadRow) WinPct() float64 {
	games := r.Wins + r.Losses + r.Ties
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(games)
}

type CategoryScore struct {
	Value  float64
	Rank   int
	Points int
}

type RotisserieRow struct {
	TeamID     string
	Rank       int
	Categories map[string]CategoryScore
	Total      int
}

type SurvivorStatus string

const (
	SURVIVOR_ALIVE      SurvivorStatus = "alive"
	SURVIVOR_BUYBACK    SurvivorStatus = "buyback"
	SURVIVOR_ELIMINATED SurvivorStatus = "eliminated"
)

type SurvivorRow struct {
	TeamID string
	Rank   int
	Status SurvivorStatus
	// EliminatedWeek is 0 while the team is alive.
	EliminatedWeek int
	BuybacksUsed   int
}

type OneAndDoneRow struct {
	TeamID    string
	Rank      int
	Total     float64
	UsedPicks []string
}
