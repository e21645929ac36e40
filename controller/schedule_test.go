package controller

import (
	"context"
	"testing"

	"github.com/mww/league_engine/testutils"
)

func TestGenerateSchedule(t *testing.T) {
	ctrl, fakes := newTestController(t)
	defer fakes.Close()

	ctx := context.Background()

	l, err := ctrl.AddLeague(ctx, "Schedule League", "2025", "golf", "head-to-head", nil, testutils.FixtureTeams)
	if err != nil {
		t.Fatalf("error adding league: %v", err)
	}

	schedule, err := ctrl.GenerateSchedule(ctx, l.ID, 6)
	if err != nil {
		t.Fatalf("error generating schedule: %v", err)
	}
	if len(schedule) != 6 {
		t.Fatalf("expected 6 weeks, got %d", len(schedule))
	}
	for _, p := range schedule {
		if len(p.Matchups) != 2 {
			t.Errorf("week %d should have 2 matchups, got %d", p.Week, len(p.Matchups))
		}
	}

	loaded, err := ctrl.GetSchedule(ctx, l.ID)
	if err != nil {
		t.Fatalf("error loading schedule: %v", err)
	}
	if len(loaded) != 6 {
		t.Errorf("expected 6 persisted weeks, got %d", len(loaded))
	}

	if _, err := ctrl.GenerateSchedule(ctx, l.ID, 0); err == nil {
		t.Errorf("expected an error for 0 weeks")
	}
}

func TestRecordResults(t *testing.T) {
	ctrl, fakes := newTestController(t)
	defer fakes.Close()

	ctx := context.Background()

	l, err := ctrl.AddLeague(ctx, "Results League", "2025", "golf", "head-to-head", nil, testutils.FixtureTeams)
	if err != nil {
		t.Fatalf("error adding league: %v", err)
	}

	schedule, err := ctrl.GenerateSchedule(ctx, l.ID, 2)
	if err != nil {
		t.Fatalf("error generating schedule: %v", err)
	}

	week1 := schedule[0].Matchups
	for i := range week1 {
		week1[i].HomeScore = 120
		week1[i].AwayScore = 95.5
		week1[i].Completed = true
	}
	if err := ctrl.RecordResults(ctx, l.ID, week1); err != nil {
		t.Fatalf("error recording results: %v", err)
	}

	results, err := ctrl.GetResults(ctx, l.ID, 1)
	if err != nil {
		t.Fatalf("error getting results: %v", err)
	}
	for _, m := range results {
		if !m.Completed || m.Winner() != m.HomeID {
			t.Errorf("matchup %d not recorded as expected: %+v", m.MatchupID, m)
		}
	}

	if err := ctrl.RecordResults(ctx, l.ID, nil); err == nil {
		t.Errorf("expected an error recording no results")
	}
}
