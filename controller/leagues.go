package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mww/league_engine/model"
)

const yearOnlyFormat = "2006"

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	return l, nil
}

func (c *controller) AddLeague(ctx context.Context, name, year, sport, format string, settings *model.LeagueSettings, teams []model.Team) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}

	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	s := model.ParseSport(sport)
	if s == model.SPORT_UNKNOWN {
		return nil, fmt.Errorf("%s is not a supported sport", sport)
	}

	f := model.ParseFormat(format)
	if f == model.FORMAT_UNKNOWN {
		return nil, fmt.Errorf("%s is not a supported league format", format)
	}

	l := &model.League{
		Name:   name,
		Year:   year,
		Sport:  s,
		Format: f,
		Teams:  teams,
	}
	if settings != nil {
		l.Settings = *settings
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.scoringConfig(l); err != nil {
		return nil, err
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) (*model.League, error) {
	if settings == nil {
		return nil, errors.New("settings must be provided")
	}

	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	// Validate the new settings in the context of the league before saving.
	l.Settings = *settings
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.scoringConfig(l); err != nil {
		return nil, err
	}

	if err := c.db.UpdateLeagueSettings(ctx, id, settings); err != nil {
		return nil, fmt.Errorf("error saving league settings: %w", err)
	}
	return l, nil
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}
