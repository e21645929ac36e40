package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mww/league_engine/model"
)

func (db *postgresDB) SaveSchedule(ctx context.Context, leagueID int32, periods []model.SchedulePeriod) error {
	const clear = `DELETE FROM matchups WHERE league_id=@leagueID`

	const insert = `INSERT INTO matchups (
		league_id,
		week,
		home_id,
		away_id
	) VALUES (
		@leagueID,
		@week,
		@homeID,
		@awayID
	) RETURNING id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, clear, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error clearing old schedule: %w", err)
	}

	for i := range periods {
		for j := range periods[i].Matchups {
			m := &periods[i].Matchups[j]
			args := pgx.NamedArgs{
				"leagueID": leagueID,
				"week":     periods[i].Week,
				"homeID":   m.HomeID,
				"awayID":   m.AwayID,
			}
			if err := tx.QueryRow(ctx, insert, args).Scan(&m.MatchupID); err != nil {
				return fmt.Errorf("error inserting matchup: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing schedule transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error) {
	const query = `SELECT id, week, home_id, away_id, home_score, away_score, completed
					FROM matchups WHERE league_id=@leagueID ORDER BY week, id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}

	periods := make([]model.SchedulePeriod, 0, 16)
	for rows.Next() {
		var m model.Matchup
		err := rows.Scan(&m.MatchupID, &m.Week, &m.HomeID, &m.AwayID,
			&m.HomeScore, &m.AwayScore, &m.Completed)
		if err != nil {
			return nil, fmt.Errorf("error scanning matchup: %w", err)
		}

		if len(periods) == 0 || periods[len(periods)-1].Week != m.Week {
			periods = append(periods, model.SchedulePeriod{Week: m.Week})
		}
		p := &periods[len(periods)-1]
		p.Matchups = append(p.Matchups, m)
	}

	return periods, nil
}

func (db *postgresDB) SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	const query = `UPDATE matchups
		SET home_score=@homeScore,
			away_score=@awayScore,
			completed=@completed
		WHERE league_id=@leagueID AND id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, m := range matchups {
		args := pgx.NamedArgs{
			"leagueID":  leagueID,
			"id":        m.MatchupID,
			"homeScore": m.HomeScore,
			"awayScore": m.AwayScore,
			"completed": m.Completed,
		}
		tag, err := tx.Exec(ctx, query, args)
		if err != nil {
			return fmt.Errorf("error saving result for matchup %d: %w", m.MatchupID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("matchup %d not found in league %d", m.MatchupID, leagueID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing results transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	const query = `SELECT id, week, home_id, away_id, home_score, away_score, completed
					FROM matchups WHERE league_id=@leagueID AND week=@week ORDER BY id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"week":     week,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading results: %w", err)
	}

	results := make([]model.Matchup, 0, 8)
	for rows.Next() {
		var m model.Matchup
		err := rows.Scan(&m.MatchupID, &m.Week, &m.HomeID, &m.AwayID,
			&m.HomeScore, &m.AwayScore, &m.Completed)
		if err != nil {
			return nil, fmt.Errorf("error scanning matchup: %w", err)
		}
		results = append(results, m)
	}

	return results, nil
}

func (db *postgresDB) ListStatWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	const query = `SELECT DISTINCT week FROM stat_lines
					WHERE league_id=@leagueID ORDER BY week`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing stat weeks: %w", err)
	}

	weeks := make([]int, 0, 16)
	for rows.Next() {
		var w int
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("error scanning week: %w", err)
		}
		weeks = append(weeks, w)
	}

	return weeks, nil
}

// statsPayload is the JSON shape stored in the stat_lines.stats column.
// Only the section matching the league's sport is set.
type statsPayload struct {
	Golf *model.GolfStats `json:"golf,omitempty"`
	NFL  *model.NFLStats  `json:"nfl,omitempty"`
}

func (db *postgresDB) SaveStatLines(ctx context.Context, leagueID int32, lines []model.StatLine) error {
	const query = `INSERT INTO stat_lines (
		league_id,
		participant_id,
		week,
		stats
	) VALUES (
		@leagueID,
		@participantID,
		@week,
		@stats
	) ON CONFLICT (league_id, participant_id, week) DO UPDATE
		SET stats=excluded.stats`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, line := range lines {
		stats, err := json.Marshal(statsPayload{Golf: line.Golf, NFL: line.NFL})
		if err != nil {
			return fmt.Errorf("error encoding stats for %s: %w", line.ParticipantID, err)
		}

		args := pgx.NamedArgs{
			"leagueID":      leagueID,
			"participantID": line.ParticipantID,
			"week":          line.Week,
			"stats":         stats,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving stat line for %s: %w", line.ParticipantID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing stat lines transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) GetStatLines(ctx context.Context, leagueID int32, week int) ([]model.StatLine, error) {
	const query = `SELECT participant_id, week, stats
					FROM stat_lines WHERE league_id=@leagueID AND week=@week
					ORDER BY participant_id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"week":     week,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading stat lines: %w", err)
	}

	results := make([]model.StatLine, 0, 32)
	for rows.Next() {
		var line model.StatLine
		var stats []byte
		if err := rows.Scan(&line.ParticipantID, &line.Week, &stats); err != nil {
			return nil, fmt.Errorf("error scanning stat line: %w", err)
		}

		var payload statsPayload
		if err := json.Unmarshal(stats, &payload); err != nil {
			return nil, fmt.Errorf("error decoding stats for %s: %w", line.ParticipantID, err)
		}
		line.Golf = payload.Golf
		line.NFL = payload.NFL

		results = append(results, line)
	}

	return results, nil
}
