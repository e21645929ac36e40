package model

import "time"

// Pick is a one-and-done selection, locked for a single week. The tier
// multiplier is fixed from the player's world rank at pick time and never
// updated retroactively.
type Pick struct {
	TeamID     string
	Week       int
	PlayerID   string
	WorldRank  int
	Multiplier float64
	Locked     time.Time
}

// BuybackRecord marks a survivor team's single-use return from elimination.
type BuybackRecord struct {
	TeamID string
	Week   int
	Used   time.Time
}
