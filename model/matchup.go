package model

// Matchup pairs two teams for one week. Scores and the completed flag are
// written by score entry after the schedule is generated; everything else is
// immutable once created.
type Matchup struct {
	MatchupID int32
	Week      int
	HomeID    string
	AwayID    string
	HomeScore float64
	AwayScore float64
	Completed bool
}

// SchedulePeriod is one week of a generated schedule.
type SchedulePeriod struct {
	Week     int
	Matchups []Matchup
}

// Winner returns the ID of the winning team, or "" for a tie or an
// incomplete matchup.
func (m *Matchup) Winner() string {
	if !m.Completed {
		return ""
	}
	if m.HomeScore > m.AwayScore {
		return m.HomeID
	}
	if m.AwayScore > m.HomeScore {
		return m.AwayID
	}
	return ""
}
