package engine

import (
	"errors"
	"testing"

	"github.com/mww/league_engine/model"
)

func survivorLeague(teams []model.Team, settings model.SurvivorSettings) *model.League {
	return leagueOf(model.FORMAT_SURVIVOR, model.LeagueSettings{Survivor: settings}, teams...)
}

// weeklyLowScores builds a season where team tN scores N points every week,
// so the lowest-numbered alive team is eliminated each period.
func weeklyLowScores(teams []model.Team, weeks int) map[int]map[string]float64 {
	scores := make(map[int]map[string]float64, weeks)
	for w := 1; w <= weeks; w++ {
		scores[w] = make(map[string]float64, len(teams))
		for i, team := range teams {
			scores[w][team.ID] = float64(i + 1)
		}
	}
	return scores
}

func TestSurvivorEliminations(t *testing.T) {
	teams := rankedTeams(10)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 1})

	in := &StandingsInput{
		Teams:        teams,
		PeriodScores: weeklyLowScores(teams, 9),
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	alive := 0
	weeksSeen := make(map[int]int)
	for _, r := range s.Survivor {
		switch r.Status {
		case model.SURVIVOR_ALIVE:
			alive++
			if r.EliminatedWeek != 0 {
				t.Errorf("alive team %s has an elimination week", r.TeamID)
			}
		case model.SURVIVOR_ELIMINATED:
			weeksSeen[r.EliminatedWeek]++
		}
	}

	if alive != 1 {
		t.Errorf("expected exactly 1 team alive after 9 periods, got %d", alive)
	}
	if len(weeksSeen) != 9 {
		t.Errorf("expected eliminations across 9 distinct weeks, got %d", len(weeksSeen))
	}
	for w, count := range weeksSeen {
		if count != 1 {
			t.Errorf("week %d eliminated %d teams, expected 1", w, count)
		}
	}

	// The survivor ranks first, the first team out ranks last.
	if s.Survivor[0].TeamID != "t10" || s.Survivor[0].Rank != 1 {
		t.Errorf("expected t10 to win, got %+v", s.Survivor[0])
	}
	if last := s.Survivor[len(s.Survivor)-1]; last.TeamID != "t1" || last.EliminatedWeek != 1 {
		t.Errorf("expected t1 out in week 1 at the bottom, got %+v", last)
	}
}

func TestSurvivorMultipleEliminationsPerPeriod(t *testing.T) {
	teams := rankedTeams(7)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 2})

	in := &StandingsInput{
		Teams:        teams,
		PeriodScores: weeklyLowScores(teams, 4),
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	// Week 1 drops t1+t2, week 2 drops t3+t4, week 3 drops t5+t6: one team
	// left, so week 4 eliminates nobody.
	alive := 0
	for _, r := range s.Survivor {
		if r.Status == model.SURVIVOR_ALIVE {
			alive++
			if r.TeamID != "t7" {
				t.Errorf("expected t7 to survive, got %s", r.TeamID)
			}
		}
	}
	if alive != 1 {
		t.Errorf("expected 1 alive team, got %d", alive)
	}
}

func TestSurvivorNeverEliminatesBelowOne(t *testing.T) {
	teams := rankedTeams(3)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 5})

	in := &StandingsInput{
		Teams:        teams,
		PeriodScores: weeklyLowScores(teams, 1),
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	alive := 0
	for _, r := range s.Survivor {
		if r.Status == model.SURVIVOR_ALIVE {
			alive++
		}
	}
	if alive != 1 {
		t.Errorf("expected eliminations to stop at 1 alive team, got %d", alive)
	}
}

func TestSurvivorTieBreaksByTeamID(t *testing.T) {
	teams := rankedTeams(4)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 1})

	// Everyone scores the same; the tie breaks to the lowest team ID, and
	// each week still eliminates exactly one team.
	scores := make(map[int]map[string]float64)
	for w := 1; w <= 3; w++ {
		scores[w] = map[string]float64{"t1": 10, "t2": 10, "t3": 10, "t4": 10}
	}

	s, err := Standings(l, &StandingsInput{Teams: teams, PeriodScores: scores})
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	byTeam := make(map[string]model.SurvivorRow)
	for _, r := range s.Survivor {
		byTeam[r.TeamID] = r
	}
	for i, teamID := range []string{"t1", "t2", "t3"} {
		if got := byTeam[teamID].EliminatedWeek; got != i+1 {
			t.Errorf("expected %s eliminated in week %d, got %d", teamID, i+1, got)
		}
	}
	if byTeam["t4"].Status != model.SURVIVOR_ALIVE {
		t.Errorf("expected t4 to survive, got %s", byTeam["t4"].Status)
	}
}

func TestSurvivorBuybackRevives(t *testing.T) {
	teams := rankedTeams(5)
	l := survivorLeague(teams, model.SurvivorSettings{
		EliminationsPerPeriod: 1,
		BuybackAllowed:        true,
		MaxBuybacksPerTeam:    1,
	})

	in := &StandingsInput{
		Teams:        teams,
		PeriodScores: weeklyLowScores(teams, 3),
		Buybacks:     []model.BuybackRecord{{TeamID: "t1", Week: 1}},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	byTeam := make(map[string]model.SurvivorRow)
	for _, r := range s.Survivor {
		byTeam[r.TeamID] = r
	}

	// t1 goes out in week 1, buys back, and is then the lowest scorer again
	// in week 2.
	t1 := byTeam["t1"]
	if t1.Status != model.SURVIVOR_ELIMINATED || t1.EliminatedWeek != 2 {
		t.Errorf("expected t1 re-eliminated in week 2, got %+v", t1)
	}
	if t1.BuybacksUsed != 1 {
		t.Errorf("expected 1 buyback used, got %d", t1.BuybacksUsed)
	}

	// With t1 back in the pool for week 2, t2 survives until week 3.
	if got := byTeam["t2"].EliminatedWeek; got != 3 {
		t.Errorf("expected t2 eliminated in week 3, got %d", got)
	}
}

func TestSurvivorBuybackValidation(t *testing.T) {
	teams := rankedTeams(4)

	rows := []model.SurvivorRow{
		{TeamID: "t1", Status: model.SURVIVOR_ELIMINATED, EliminatedWeek: 2},
		{TeamID: "t2", Status: model.SURVIVOR_ELIMINATED, EliminatedWeek: 3, BuybacksUsed: 1},
		{TeamID: "t3", Status: model.SURVIVOR_ALIVE},
	}

	tests := []struct {
		name     string
		settings model.SurvivorSettings
		teamID   string
		week     int
		wantErr  error
	}{
		{
			name:     "allowed",
			settings: model.SurvivorSettings{EliminationsPerPeriod: 1, BuybackAllowed: true, MaxBuybacksPerTeam: 1},
			teamID:   "t1",
			week:     3,
		},
		{
			name:     "league disallows buybacks",
			settings: model.SurvivorSettings{EliminationsPerPeriod: 1},
			teamID:   "t1",
			week:     3,
			wantErr:  ErrBuybackNotAllowed,
		},
		{
			name:     "not eliminated",
			settings: model.SurvivorSettings{EliminationsPerPeriod: 1, BuybackAllowed: true, MaxBuybacksPerTeam: 1},
			teamID:   "t3",
			week:     3,
			wantErr:  ErrTeamNotEliminated,
		},
		{
			name:     "limit reached",
			settings: model.SurvivorSettings{EliminationsPerPeriod: 1, BuybackAllowed: true, MaxBuybacksPerTeam: 1},
			teamID:   "t2",
			week:     4,
			wantErr:  ErrBuybackLimitReached,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := survivorLeague(teams, tc.settings)
			rec, err := SurvivorBuyback(l, rows, tc.teamID, tc.week)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			want := model.BuybackRecord{TeamID: tc.teamID, Week: tc.week}
			if rec != want {
				t.Errorf("expected %+v, got %+v", want, rec)
			}
		})
	}

	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 1, BuybackAllowed: true, MaxBuybacksPerTeam: 1})
	if _, err := SurvivorBuyback(l, rows, "t9", 3); err == nil {
		t.Errorf("expected an error for a team outside the league")
	}
	if _, err := SurvivorBuyback(l, rows, "t1", 1); err == nil {
		t.Errorf("expected an error buying back before the elimination week")
	}
}

func TestSurvivorMissingWeekScores(t *testing.T) {
	teams := rankedTeams(3)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 1})

	// t3 has no score in week 1 and is treated as the zero-point low team.
	in := &StandingsInput{
		Teams: teams,
		PeriodScores: map[int]map[string]float64{
			1: {"t1": 10, "t2": 20},
		},
	}

	s, err := Standings(l, in)
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}
	for _, r := range s.Survivor {
		if r.TeamID == "t3" {
			if r.Status != model.SURVIVOR_ELIMINATED || r.EliminatedWeek != 1 {
				t.Errorf("expected t3 eliminated in week 1 on a zero score, got %+v", r)
			}
		}
	}
}

func TestSurvivorRankOrder(t *testing.T) {
	teams := rankedTeams(4)
	l := survivorLeague(teams, model.SurvivorSettings{EliminationsPerPeriod: 1})

	s, err := Standings(l, &StandingsInput{
		Teams:        teams,
		PeriodScores: weeklyLowScores(teams, 3),
	})
	if err != nil {
		t.Fatalf("error computing standings: %v", err)
	}

	want := []string{"t4", "t3", "t2", "t1"}
	for i, teamID := range want {
		if s.Survivor[i].TeamID != teamID {
			t.Fatalf("expected rank order %v, got %s at %d", want, s.Survivor[i].TeamID, i)
		}
		if s.Survivor[i].Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, s.Survivor[i].Rank)
		}
	}
}
