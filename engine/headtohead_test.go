package engine

import (
	"testing"

	"github.com/mww/league_engine/model"
)

func completedMatchup(week int, home, away string, hs, as float64) model.Matchup {
	return model.Matchup{Week: week, HomeID: home, AwayID: away, HomeScore: hs, AwayScore: as, Completed: true}
}

func TestHeadToHeadRecords(t *testing.T) {
	teams := rankedTeams(4)
	l := leagueOf(model.FORMAT_HEAD2HEAD, model.LeagueSettings{}, teams...)

	in := &StandingsInput{
		Teams: teams,
		Matchups: []model.Matchup{
			completedMatchup(1, "t1", "t2", 100, 90),
			completedMatchup(1, "t3", "t4", 80, 80),
			completedMatchup(2, "t1", "t3", 110, 70),
			// An unscored matchup contributes nothing.
			{Week: 2, HomeID: "t2", AwayID: "t4"},
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	byTeam := make(map[string]model.HeadToHeadRow)
	for _, r := range s.HeadToHead {
		byTeam[r.TeamID] = r
	}

	t1 := byTeam["t1"]
	if t1.Wins != 2 || t1.Losses != 0 || t1.Ties != 0 {
		t.Errorf("unexpected t1 record: %+v", t1)
	}
	if t1.PointsFor != 210 || t1.PointsAgainst != 160 {
		t.Errorf("unexpected t1 points: %+v", t1)
	}
	if t1.Rank != 1 {
		t.Errorf("expected t1 to rank first, got %d", t1.Rank)
	}

	t3 := byTeam["t3"]
	if t3.Wins != 0 || t3.Losses != 1 || t3.Ties != 1 {
		t.Errorf("unexpected t3 record: %+v", t3)
	}
}

func TestHeadToHeadTiebreakerChain(t *testing.T) {
	teams := rankedTeams(4)
	l := leagueOf(model.FORMAT_HEAD2HEAD, model.LeagueSettings{
		Tiebreakers: []model.Tiebreaker{model.TIEBREAK_HEAD_TO_HEAD, model.TIEBREAK_POINTS_FOR},
	}, teams...)

	// t1 and t2 finish 2-1; t2 won their meeting, so head-to-head settles
	// them before points-for is ever consulted (points-for favors t1).
	// t3 and t4 finish 1-2 and resolve the same way to t4.
	in := &StandingsInput{
		Teams: teams,
		Matchups: []model.Matchup{
			completedMatchup(1, "t2", "t1", 90, 80),
			completedMatchup(1, "t3", "t4", 60, 70),
			completedMatchup(2, "t1", "t3", 150, 50),
			completedMatchup(2, "t2", "t4", 85, 55),
			completedMatchup(3, "t1", "t4", 140, 40),
			completedMatchup(3, "t3", "t2", 95, 75),
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	order := make([]string, 0, 4)
	for _, r := range s.HeadToHead {
		order = append(order, r.TeamID)
	}
	want := []string{"t2", "t1", "t4", "t3"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestHeadToHeadPointsForTiebreaker(t *testing.T) {
	teams := rankedTeams(2)
	l := leagueOf(model.FORMAT_HEAD2HEAD, model.LeagueSettings{
		Tiebreakers: []model.Tiebreaker{model.TIEBREAK_POINTS_FOR},
	}, teams...)

	// Both teams are 1-1, t2 scored more overall.
	in := &StandingsInput{
		Teams: teams,
		Matchups: []model.Matchup{
			completedMatchup(1, "t1", "t2", 100, 90),
			completedMatchup(2, "t2", "t1", 130, 60),
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}
	if s.HeadToHead[0].TeamID != "t2" {
		t.Errorf("expected t2 to win the points-for tiebreaker, got %s", s.HeadToHead[0].TeamID)
	}
}

func TestHeadToHeadDivisionRecords(t *testing.T) {
	teams := []model.Team{
		{ID: "t1", Division: "east"},
		{ID: "t2", Division: "east"},
		{ID: "t3", Division: "west"},
		{ID: "t4", Division: "west"},
	}
	l := leagueOf(model.FORMAT_HEAD2HEAD, model.LeagueSettings{}, teams...)

	in := &StandingsInput{
		Teams: teams,
		Matchups: []model.Matchup{
			completedMatchup(1, "t1", "t2", 100, 90), // in-division
			completedMatchup(2, "t1", "t3", 100, 90), // cross-division
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	byTeam := make(map[string]model.HeadToHeadRow)
	for _, r := range s.HeadToHead {
		byTeam[r.TeamID] = r
	}

	t1 := byTeam["t1"]
	if t1.Wins != 2 {
		t.Errorf("expected 2 overall wins, got %d", t1.Wins)
	}
	if t1.DivisionWins != 1 || t1.DivisionLosses != 0 {
		t.Errorf("expected a 1-0 division record, got %d-%d", t1.DivisionWins, t1.DivisionLosses)
	}
	if got := byTeam["t2"].DivisionLosses; got != 1 {
		t.Errorf("expected t2 to have 1 division loss, got %d", got)
	}
	if got := byTeam["t3"].DivisionLosses; got != 0 {
		t.Errorf("cross-division loss should not count for t3, got %d", got)
	}
}

func TestHeadToHeadStableTieOrder(t *testing.T) {
	teams := rankedTeams(3)
	l := leagueOf(model.FORMAT_HEAD2HEAD, model.LeagueSettings{}, teams...)

	// No games at all: everyone is tied and stays in team-ID order.
	s, err := Standings(l, &StandingsInput{Teams: teams})
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}
	for i, want := range []string{"t1", "t2", "t3"} {
		if s.HeadToHead[i].TeamID != want {
			t.Errorf("row %d: expected %s, got %s", i, want, s.HeadToHead[i].TeamID)
		}
		if s.HeadToHead[i].Rank != i+1 {
			t.Errorf("row %d: expected rank %d, got %d", i, i+1, s.HeadToHead[i].Rank)
		}
	}
}
