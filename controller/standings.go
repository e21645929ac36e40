package controller

import (
	"context"
	"fmt"

	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
)

func (c *controller) Standings(ctx context.Context, leagueID int32) (*model.Standings, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	in := &engine.StandingsInput{Teams: l.Teams}

	switch l.Format {
	case model.FORMAT_FULL_LEAGUE:
		in.PeriodScores, err = c.periodScores(ctx, l)
	case model.FORMAT_SURVIVOR:
		if in.PeriodScores, err = c.periodScores(ctx, l); err == nil {
			in.Buybacks, err = c.db.GetBuybacks(ctx, leagueID)
		}
	case model.FORMAT_HEAD2HEAD:
		in.Matchups, err = c.allMatchups(ctx, leagueID)
	case model.FORMAT_ROTISSERIE:
		in.CategoryValues, err = c.categoryValues(ctx, l)
	case model.FORMAT_ONE_AND_DONE:
		if in.Picks, err = c.db.GetPicks(ctx, leagueID); err == nil {
			in.PickPoints, err = c.pickPoints(ctx, l)
		}
	}
	if err != nil {
		return nil, err
	}

	return engine.Standings(l, in)
}

// periodScores evaluates each team's weekly stat line against the league's
// scoring config. Teams with no stat line for a week simply have no entry.
func (c *controller) periodScores(ctx context.Context, l *model.League) (map[int]map[string]float64, error) {
	config, err := c.scoringConfig(l)
	if err != nil {
		return nil, err
	}

	teamIDs := make(map[string]bool, len(l.Teams))
	for _, t := range l.Teams {
		teamIDs[t.ID] = true
	}

	scores := make(map[int]map[string]float64)
	err = c.eachStatWeek(ctx, l.ID, func(week int, lines []model.StatLine) {
		for i := range lines {
			if !teamIDs[lines[i].ParticipantID] {
				continue
			}
			if scores[week] == nil {
				scores[week] = make(map[string]float64)
			}
			scores[week][lines[i].ParticipantID] = engine.Evaluate(config, &lines[i]).Total
		}
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// pickPoints evaluates every week's stat lines keyed by player, feeding
// one-and-done totals.
func (c *controller) pickPoints(ctx context.Context, l *model.League) (map[int]map[string]float64, error) {
	config, err := c.scoringConfig(l)
	if err != nil {
		return nil, err
	}

	points := make(map[int]map[string]float64)
	err = c.eachStatWeek(ctx, l.ID, func(week int, lines []model.StatLine) {
		if len(lines) == 0 {
			return
		}
		points[week] = make(map[string]float64, len(lines))
		for i := range lines {
			points[week][lines[i].ParticipantID] = engine.Evaluate(config, &lines[i]).Total
		}
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// categoryValues accumulates season totals for each configured rotisserie
// category.
func (c *controller) categoryValues(ctx context.Context, l *model.League) (map[string]map[string]float64, error) {
	teamIDs := make(map[string]bool, len(l.Teams))
	for _, t := range l.Teams {
		teamIDs[t.ID] = true
	}

	values := make(map[string]map[string]float64, len(l.Settings.Categories))
	for _, cat := range l.Settings.Categories {
		values[cat.Key] = make(map[string]float64)
	}

	err := c.eachStatWeek(ctx, l.ID, func(week int, lines []model.StatLine) {
		for i := range lines {
			if !teamIDs[lines[i].ParticipantID] {
				continue
			}
			for _, cat := range l.Settings.Categories {
				values[cat.Key][lines[i].ParticipantID] += statValue(&lines[i], cat.Key)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (c *controller) eachStatWeek(ctx context.Context, leagueID int32, fn func(week int, lines []model.StatLine)) error {
	weeks, err := c.db.ListStatWeeks(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error listing stat weeks: %w", err)
	}

	for _, week := range weeks {
		lines, err := c.db.GetStatLines(ctx, leagueID, week)
		if err != nil {
			return fmt.Errorf("error loading stat lines for week %d: %w", week, err)
		}
		fn(week, lines)
	}
	return nil
}

func (c *controller) allMatchups(ctx context.Context, leagueID int32) ([]model.Matchup, error) {
	schedule, err := c.db.GetSchedule(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	matchups := make([]model.Matchup, 0, len(schedule)*4)
	for _, p := range schedule {
		matchups = append(matchups, p.Matchups...)
	}
	return matchups, nil
}

// statValue maps a rotisserie category key to the matching raw stat. Keys
// with no stat, or lines for the wrong sport, contribute zero.
func statValue(line *model.StatLine, key string) float64 {
	if line.Golf != nil {
		g := line.Golf
		switch key {
		case "wins":
			if g.FinishPosition == 1 {
				return 1
			}
			return 0
		case "top10s":
			if g.FinishPosition >= 1 && g.FinishPosition <= 10 {
				return 1
			}
			return 0
		case "made_cuts":
			if g.MadeCut {
				return 1
			}
			return 0
		case "holes_in_one":
			return float64(g.HolesInOne)
		case "eagles":
			return float64(g.Eagles)
		case "birdies":
			return float64(g.Birdies)
		case "pars":
			return float64(g.Pars)
		case "bogeys":
			return float64(g.Bogeys)
		case "sg_total":
			return g.SGTotal
		}
		return 0
	}

	if line.NFL != nil {
		n := line.NFL
		switch key {
		case "pass_yd":
			return float64(n.PassYards)
		case "pass_td":
			return float64(n.PassTDs)
		case "rush_yd":
			return float64(n.RushYards)
		case "rush_td":
			return float64(n.RushTDs)
		case "rec":
			return float64(n.Receptions)
		case "rec_yd":
			return float64(n.RecYards)
		case "rec_td":
			return float64(n.RecTDs)
		}
	}

	return 0
}
