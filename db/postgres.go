package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/league_engine/model"
)

var (
	ErrLeagueNotFound  error = errors.New("league not found")
	ErrBracketNotFound error = errors.New("bracket not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, name, year, sport, format, settings, archived
					FROM leagues WHERE archived=false ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}

	return results, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, name, year, sport, format, settings, archived
					FROM leagues WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}

	teams, err := db.GetTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading teams for league %d: %w", id, err)
	}
	l.Teams = teams

	return l, nil
}

func (db *postgresDB) AddLeague(ctx context.Context, league *model.League) error {
	const query = `INSERT INTO leagues (
		name,
		year,
		sport,
		format,
		settings
	) VALUES (
		@name,
		@year,
		@sport,
		@format,
		@settings
	) RETURNING id`

	settings, err := json.Marshal(league.Settings)
	if err != nil {
		return fmt.Errorf("error encoding league settings: %w", err)
	}

	args := pgx.NamedArgs{
		"name":     league.Name,
		"year":     league.Year,
		"sport":    string(league.Sport),
		"format":   string(league.Format),
		"settings": settings,
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, query, args).Scan(&league.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}

	for i := range league.Teams {
		if err := saveTeam(ctx, tx, league.ID, &league.Teams[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing league transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) error {
	const query = `UPDATE leagues SET settings=@settings WHERE id=@id`

	enc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error encoding league settings: %w", err)
	}

	args := pgx.NamedArgs{
		"id":       id,
		"settings": enc,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating settings for league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const query = `UPDATE leagues SET archived=true WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	const query = `SELECT id, name, owner_id, seed, division
					FROM teams WHERE league_id=@leagueID ORDER BY seed, id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading teams: %w", err)
	}

	results := make([]model.Team, 0, 12)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnerID, &t.Seed, &t.Division); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, t)
	}

	return results, nil
}

func (db *postgresDB) SaveTeam(ctx context.Context, leagueID int32, team *model.Team) error {
	return saveTeam(ctx, db.pool, leagueID, team)
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func saveTeam(ctx context.Context, q querier, leagueID int32, team *model.Team) error {
	const query = `INSERT INTO teams (
		id,
		league_id,
		name,
		owner_id,
		seed,
		division
	) VALUES (
		@id,
		@leagueID,
		@name,
		@ownerID,
		@seed,
		@division
	) ON CONFLICT (league_id, id) DO UPDATE
		SET name=excluded.name,
			owner_id=excluded.owner_id,
			seed=excluded.seed,
			division=excluded.division`

	args := pgx.NamedArgs{
		"id":       team.ID,
		"leagueID": leagueID,
		"name":     team.Name,
		"ownerID":  team.OwnerID,
		"seed":     team.Seed,
		"division": team.Division,
	}
	if _, err := q.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team %s: %w", team.ID, err)
	}
	return nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var result model.League
	var sport, format string
	var settings []byte
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Year,
		&sport,
		&format,
		&settings,
		&result.Archived)
	if err != nil {
		return nil, err
	}

	result.Sport = model.ParseSport(sport)
	result.Format = model.ParseFormat(format)
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &result.Settings); err != nil {
			return nil, fmt.Errorf("error decoding league settings: %w", err)
		}
	}

	return &result, nil
}
