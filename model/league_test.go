package model

import (
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "full-league", want: FORMAT_FULL_LEAGUE},
		{in: "head-to-head", want: FORMAT_HEAD2HEAD},
		{in: "h2h", want: FORMAT_HEAD2HEAD},
		{in: "Rotisserie", want: FORMAT_ROTISSERIE},
		{in: "roto", want: FORMAT_ROTISSERIE},
		{in: "survivor", want: FORMAT_SURVIVOR},
		{in: "one-and-done", want: FORMAT_ONE_AND_DONE},
		{in: "best-ball", want: FORMAT_UNKNOWN},
		{in: "", want: FORMAT_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseFormat(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseSport(t *testing.T) {
	tests := []struct {
		in   string
		want Sport
	}{
		{in: "golf", want: SPORT_GOLF},
		{in: "NFL", want: SPORT_NFL},
		{in: "nhl", want: SPORT_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseSport(tc.in); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLeagueValidate(t *testing.T) {
	categories := func(n int) []RotoCategory {
		c := make([]RotoCategory, n)
		for i := range c {
			c[i] = RotoCategory{Key: PositionKey(i + 1)}
		}
		return c
	}

	tests := []struct {
		name    string
		league  League
		wantErr bool
	}{
		{
			name:   "full league defaults",
			league: League{Sport: SPORT_GOLF, Format: FORMAT_FULL_LEAGUE},
		},
		{
			name:    "unknown sport",
			league:  League{Sport: SPORT_UNKNOWN, Format: FORMAT_FULL_LEAGUE},
			wantErr: true,
		},
		{
			name:    "unknown format",
			league:  League{Sport: SPORT_GOLF, Format: FORMAT_UNKNOWN},
			wantErr: true,
		},
		{
			name: "roto with too few categories",
			league: League{Sport: SPORT_NFL, Format: FORMAT_ROTISSERIE,
				Settings: LeagueSettings{Categories: categories(3)}},
			wantErr: true,
		},
		{
			name: "roto with too many categories",
			league: League{Sport: SPORT_NFL, Format: FORMAT_ROTISSERIE,
				Settings: LeagueSettings{Categories: categories(11)}},
			wantErr: true,
		},
		{
			name: "roto in range",
			league: League{Sport: SPORT_NFL, Format: FORMAT_ROTISSERIE,
				Settings: LeagueSettings{Categories: categories(6)}},
		},
		{
			name: "roto duplicate category",
			league: League{Sport: SPORT_NFL, Format: FORMAT_ROTISSERIE,
				Settings: LeagueSettings{Categories: []RotoCategory{
					{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "a"},
				}}},
			wantErr: true,
		},
		{
			name: "playoff count larger than league",
			league: League{Sport: SPORT_NFL, Format: FORMAT_HEAD2HEAD,
				Teams:    []Team{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
				Settings: LeagueSettings{Playoffs: PlayoffSettings{TeamCount: 6}}},
			wantErr: true,
		},
		{
			name: "playoff count of one",
			league: League{Sport: SPORT_NFL, Format: FORMAT_HEAD2HEAD,
				Settings: LeagueSettings{Playoffs: PlayoffSettings{TeamCount: 1}}},
			wantErr: true,
		},
		{
			name: "bad tiebreaker",
			league: League{Sport: SPORT_NFL, Format: FORMAT_HEAD2HEAD,
				Settings: LeagueSettings{Tiebreakers: []Tiebreaker{"coin_flip"}}},
			wantErr: true,
		},
		{
			name: "survivor needs eliminations",
			league: League{Sport: SPORT_GOLF, Format: FORMAT_SURVIVOR,
				Settings: LeagueSettings{Survivor: SurvivorSettings{EliminationsPerPeriod: 0}}},
			wantErr: true,
		},
		{
			name: "survivor buyback without allowance",
			league: League{Sport: SPORT_GOLF, Format: FORMAT_SURVIVOR,
				Settings: LeagueSettings{Survivor: SurvivorSettings{
					EliminationsPerPeriod: 1, BuybackAllowed: true, MaxBuybacksPerTeam: 0}}},
			wantErr: true,
		},
		{
			name: "one-and-done without tiers",
			league: League{Sport: SPORT_GOLF, Format: FORMAT_ONE_AND_DONE,
				Settings: LeagueSettings{}},
			wantErr: true,
		},
		{
			name: "one-and-done with tiers",
			league: League{Sport: SPORT_GOLF, Format: FORMAT_ONE_AND_DONE,
				Settings: LeagueSettings{OneAndDone: OneAndDoneSettings{
					Tiers: []PickTier{{MaxWorldRank: 10, Multiplier: 1}, {MaxWorldRank: 0, Multiplier: 2}},
				}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.league.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("expected an error but got none")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestTierMultiplier(t *testing.T) {
	s := &OneAndDoneSettings{
		Tiers: []PickTier{
			{MaxWorldRank: 10, Multiplier: 1},
			{MaxWorldRank: 30, Multiplier: 1.5},
			{MaxWorldRank: 0, Multiplier: 2},
		},
	}

	tests := []struct {
		rank int
		want float64
	}{
		{rank: 1, want: 1},
		{rank: 10, want: 1},
		{rank: 11, want: 1.5},
		{rank: 30, want: 1.5},
		{rank: 31, want: 2},
		{rank: 200, want: 2},
		{rank: 0, want: 2}, // unranked
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := s.TierMultiplier(tc.rank); got != tc.want {
				t.Errorf("rank %d: expected %v, got %v", tc.rank, tc.want, got)
			}
		})
	}
}

func TestMatchupWinner(t *testing.T) {
	tests := []struct {
		name string
		m    Matchup
		want string
	}{
		{name: "incomplete", m: Matchup{HomeID: "a", AwayID: "b", HomeScore: 10}, want: ""},
		{name: "home wins", m: Matchup{HomeID: "a", AwayID: "b", HomeScore: 10, AwayScore: 5, Completed: true}, want: "a"},
		{name: "away wins", m: Matchup{HomeID: "a", AwayID: "b", HomeScore: 3, AwayScore: 5, Completed: true}, want: "b"},
		{name: "tie", m: Matchup{HomeID: "a", AwayID: "b", HomeScore: 5, AwayScore: 5, Completed: true}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Winner(); got != tc.want {
				t.Errorf("expected '%s', got '%s'", tc.want, got)
			}
		})
	}
}
