package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
)

// scoringConfig resolves the league's effective scoring config: a custom
// config when one is set, otherwise the named preset. An empty preset name
// means the standard preset.
func (c *controller) scoringConfig(l *model.League) (*model.ScoringConfig, error) {
	if l.Settings.Scoring != nil {
		return l.Settings.Scoring, nil
	}

	name := l.Settings.ScoringPreset
	if name == "" {
		name = "standard"
	}
	return engine.Preset(name, l.Sport)
}

func (c *controller) PreviewScore(ctx context.Context, leagueID int32, stat *model.StatLine) (*model.ScoreResult, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	config, err := c.scoringConfig(l)
	if err != nil {
		return nil, err
	}

	res := engine.Evaluate(config, stat)
	return &res, nil
}

func (c *controller) ScoreWeek(ctx context.Context, leagueID int32, week int) (map[string]model.ScoreResult, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	config, err := c.scoringConfig(l)
	if err != nil {
		return nil, err
	}

	lines, err := c.db.GetStatLines(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("error loading stat lines: %w", err)
	}

	scores := make(map[string]model.ScoreResult, len(lines))
	for i := range lines {
		scores[lines[i].ParticipantID] = engine.Evaluate(config, &lines[i])
	}
	return scores, nil
}

func (c *controller) SyncStats(ctx context.Context, leagueID int32, week int) error {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}

	lines, err := c.stats.LoadStats(l.Sport, l.Year, week)
	if err != nil {
		return fmt.Errorf("error loading stats from provider: %w", err)
	}
	if len(lines) == 0 {
		return nil
	}

	if err := c.db.SaveStatLines(ctx, leagueID, lines); err != nil {
		return fmt.Errorf("error saving stat lines: %w", err)
	}
	return nil
}

// RunPeriodicStatsSync re-syncs the most recent scored week of every active
// league, picking up stat corrections from the provider.
func (c *controller) RunPeriodicStatsSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.syncLatestStats(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

func (c *controller) syncLatestStats(ctx context.Context) error {
	leagues, err := c.db.ListLeagues(ctx)
	if err != nil {
		return fmt.Errorf("error listing leagues for stats sync: %w", err)
	}

	for _, l := range leagues {
		weeks, err := c.db.ListStatWeeks(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("error listing stat weeks for league %d: %w", l.ID, err)
		}
		if len(weeks) == 0 {
			continue
		}

		if err := c.SyncStats(ctx, l.ID, weeks[len(weeks)-1]); err != nil {
			return err
		}
	}
	return nil
}
