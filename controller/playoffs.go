package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
)

func (c *controller) GenerateBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	size := l.Settings.Playoffs.TeamCount
	if size == 0 {
		return nil, errors.New("league has no playoff settings")
	}

	policy := l.Settings.Playoffs.Policy
	if policy == "" {
		policy = model.SEEDING_FIXED
	}

	// Teams come out of the db ordered by seed, which is the bracket order.
	b, err := engine.GenerateBracket(l.Teams, size, policy)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveBracket(ctx, leagueID, b); err != nil {
		return nil, fmt.Errorf("error saving bracket: %w", err)
	}
	return b, nil
}

func (c *controller) GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	return c.db.GetBracket(ctx, leagueID)
}

func (c *controller) RecordPlayoffResult(ctx context.Context, leagueID int32, round, slot int, winnerID string, score1, score2 float64) (*model.Bracket, error) {
	b, err := c.db.GetBracket(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	updated, err := engine.RecordWinner(b, round, slot, winnerID, score1, score2)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveBracket(ctx, leagueID, updated); err != nil {
		return nil, fmt.Errorf("error saving bracket: %w", err)
	}
	return updated, nil
}

func (c *controller) AdvancePlayoffRound(ctx context.Context, leagueID int32, round int) (*model.Bracket, error) {
	b, err := c.db.GetBracket(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	updated, err := engine.AdvanceRound(b, round)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveBracket(ctx, leagueID, updated); err != nil {
		return nil, fmt.Errorf("error saving bracket: %w", err)
	}
	return updated, nil
}

func (c *controller) SubmitPlayoffSlots(ctx context.Context, leagueID int32, round int, pairs [][2]string) (*model.Bracket, error) {
	b, err := c.db.GetBracket(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	updated, err := engine.SubmitRoundSlots(b, round, pairs)
	if err != nil {
		return nil, err
	}

	if err := c.db.SaveBracket(ctx, leagueID, updated); err != nil {
		return nil, fmt.Errorf("error saving bracket: %w", err)
	}
	return updated, nil
}
