package controller

import (
	"context"
	"fmt"

	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
)

func (c *controller) LockPick(ctx context.Context, leagueID int32, teamID, playerID string, week, worldRank int) (*model.Pick, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	if l.Format != model.FORMAT_ONE_AND_DONE {
		return nil, fmt.Errorf("%s leagues do not lock picks", l.Format)
	}
	if !hasTeam(l, teamID) {
		return nil, fmt.Errorf("team %s is not in the league", teamID)
	}

	existing, err := c.db.GetPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading existing picks: %w", err)
	}

	p, err := engine.LockPick(l, existing, teamID, playerID, week, worldRank, c.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := c.db.SavePick(ctx, leagueID, &p); err != nil {
		return nil, fmt.Errorf("error saving pick: %w", err)
	}
	return &p, nil
}

func (c *controller) SurvivorBuyback(ctx context.Context, leagueID int32, teamID string, week int) (*model.BuybackRecord, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	if l.Format != model.FORMAT_SURVIVOR {
		return nil, fmt.Errorf("%s leagues do not support buybacks", l.Format)
	}

	// Replay the current survivor state to validate the buyback against it.
	standings, err := c.Standings(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	r, err := engine.SurvivorBuyback(l, standings.Survivor, teamID, week)
	if err != nil {
		return nil, err
	}
	r.Used = c.clock.Now().UTC()

	if err := c.db.SaveBuyback(ctx, leagueID, &r); err != nil {
		return nil, fmt.Errorf("error saving buyback: %w", err)
	}
	return &r, nil
}

func hasTeam(l *model.League, teamID string) bool {
	for _, t := range l.Teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}
