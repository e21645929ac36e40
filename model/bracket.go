package model

// BracketNode is one slot in a playoff round. Seeds and team IDs are zero
// values until the slot is populated. A bye node has a single populated side
// and an implicit winner equal to the present team.
type BracketNode struct {
	Seed1        int
	Seed2        int
	Team1        string
	Team2        string
	Score1       float64
	Score2       float64
	WinnerTeamID string
	IsBye        bool
}

type BracketRound struct {
	Name    string
	Matches []BracketNode
}

// Bracket is an ordered list of rounds plus the terminal champion slot. The
// engine treats brackets as values: every advancement produces a new Bracket
// and the old one is never mutated.
type Bracket struct {
	Size       int
	Policy     SeedingPolicy
	Rounds     []BracketRound
	ChampionID string
}

// Clone returns a deep copy so that advancement can build a new value
// without touching the original.
func (b *Bracket) Clone() *Bracket {
	c := &Bracket{
		Size:       b.Size,
		Policy:     b.Policy,
		ChampionID: b.ChampionID,
		Rounds:     make([]BracketRound, len(b.Rounds)),
	}
	for i, r := range b.Rounds {
		c.Rounds[i] = BracketRound{
			Name:    r.Name,
			Matches: make([]BracketNode, len(r.Matches)),
		}
		copy(c.Rounds[i].Matches, r.Matches)
	}
	return c
}

// Complete reports whether every non-bye node in the round has a winner.
func (r *BracketRound) Complete() bool {
	for _, m := range r.Matches {
		if m.IsBye {
			continue
		}
		if m.WinnerTeamID == "" {
			return false
		}
	}
	return true
}
