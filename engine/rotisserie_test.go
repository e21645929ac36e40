package engine

import (
	"testing"

	"github.com/mww/league_engine/model"
)

func rotoLeague(teams []model.Team, categories ...model.RotoCategory) *model.League {
	return leagueOf(model.FORMAT_ROTISSERIE, model.LeagueSettings{Categories: categories}, teams...)
}

func TestRotisseriePoints(t *testing.T) {
	teams := rankedTeams(6)
	l := rotoLeague(teams,
		model.RotoCategory{Key: "birdies"},
		model.RotoCategory{Key: "scoringAvg", LowerIsBetter: true},
	)

	in := &StandingsInput{
		Teams: teams,
		CategoryValues: map[string]map[string]float64{
			"birdies":    {"t1": 120, "t2": 110, "t3": 100, "t4": 90, "t5": 80, "t6": 70},
			"scoringAvg": {"t1": 71.5, "t2": 70.1, "t3": 69.8, "t4": 70.9, "t5": 72.3, "t6": 70.5},
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	byTeam := make(map[string]model.RotisserieRow)
	for _, r := range s.Rotisserie {
		byTeam[r.TeamID] = r
	}

	// Rank 1 in a 6-team category is worth 6 points, rank 6 is worth 1.
	if got := byTeam["t1"].Categories["birdies"]; got.Rank != 1 || got.Points != 6 {
		t.Errorf("unexpected t1 birdies score: %+v", got)
	}
	if got := byTeam["t6"].Categories["birdies"]; got.Rank != 6 || got.Points != 1 {
		t.Errorf("unexpected t6 birdies score: %+v", got)
	}

	// Lower-is-better inverts the direction: t3's 69.8 leads.
	if got := byTeam["t3"].Categories["scoringAvg"]; got.Rank != 1 || got.Points != 6 {
		t.Errorf("unexpected t3 scoring average score: %+v", got)
	}
	if got := byTeam["t5"].Categories["scoringAvg"]; got.Rank != 6 || got.Points != 1 {
		t.Errorf("unexpected t5 scoring average score: %+v", got)
	}

	// The category points always sum to n*(n+1)/2.
	for _, key := range []string{"birdies", "scoringAvg"} {
		sum := 0
		for _, r := range s.Rotisserie {
			sum += r.Categories[key].Points
		}
		if sum != 21 {
			t.Errorf("category %s points sum to %d, expected 21", key, sum)
		}
	}
}

func TestRotisserieTotalAndRank(t *testing.T) {
	teams := rankedTeams(3)
	l := rotoLeague(teams,
		model.RotoCategory{Key: "a"},
		model.RotoCategory{Key: "b"},
	)

	in := &StandingsInput{
		Teams: teams,
		CategoryValues: map[string]map[string]float64{
			"a": {"t1": 30, "t2": 20, "t3": 10},
			"b": {"t1": 5, "t2": 20, "t3": 10},
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	// t1: 3+1=4, t2: 2+3=5, t3: 1+2=3
	want := []struct {
		teamID string
		total  int
	}{
		{teamID: "t2", total: 5},
		{teamID: "t1", total: 4},
		{teamID: "t3", total: 3},
	}
	for i, w := range want {
		r := s.Rotisserie[i]
		if r.TeamID != w.teamID || r.Total != w.total || r.Rank != i+1 {
			t.Errorf("row %d: expected %s with total %d, got %+v", i, w.teamID, w.total, r)
		}
	}
}

func TestRotisserieMissingValues(t *testing.T) {
	teams := rankedTeams(4)
	l := rotoLeague(teams, model.RotoCategory{Key: "birdies"})

	// Only two teams have values; the rest rank below them on zero.
	in := &StandingsInput{
		Teams: teams,
		CategoryValues: map[string]map[string]float64{
			"birdies": {"t3": 40, "t4": 50},
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}
	if len(s.Rotisserie) != 4 {
		t.Fatalf("expected rows for all 4 teams, got %d", len(s.Rotisserie))
	}
	if s.Rotisserie[0].TeamID != "t4" || s.Rotisserie[1].TeamID != "t3" {
		t.Errorf("expected t4 then t3 at the top, got %s then %s",
			s.Rotisserie[0].TeamID, s.Rotisserie[1].TeamID)
	}
}
