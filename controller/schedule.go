package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
)

func (c *controller) GenerateSchedule(ctx context.Context, leagueID int32, periods int) ([]model.SchedulePeriod, error) {
	if periods < 1 {
		return nil, errors.New("a schedule needs at least 1 week")
	}

	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	if len(l.Teams) < 2 {
		return nil, errors.New("a schedule needs at least 2 teams")
	}

	ids := make([]string, 0, len(l.Teams))
	for _, t := range l.Teams {
		ids = append(ids, t.ID)
	}

	schedule := engine.GenerateSchedule(ids, periods)
	if err := c.db.SaveSchedule(ctx, leagueID, schedule); err != nil {
		return nil, fmt.Errorf("error saving schedule: %w", err)
	}
	return schedule, nil
}

func (c *controller) GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error) {
	return c.db.GetSchedule(ctx, leagueID)
}

func (c *controller) RecordResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	if len(matchups) == 0 {
		return errors.New("no results to record")
	}
	return c.db.SaveResults(ctx, leagueID, matchups)
}

func (c *controller) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	return c.db.GetResults(ctx, leagueID, week)
}
