package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_engine/model"
)

func (db *postgresDB) SavePick(ctx context.Context, leagueID int32, p *model.Pick) error {
	const query = `INSERT INTO picks (
		league_id,
		team_id,
		week,
		player_id,
		world_rank,
		multiplier,
		locked
	) VALUES (
		@leagueID,
		@teamID,
		@week,
		@playerID,
		@worldRank,
		@multiplier,
		@locked
	)`

	args := pgx.NamedArgs{
		"leagueID":   leagueID,
		"teamID":     p.TeamID,
		"week":       p.Week,
		"playerID":   p.PlayerID,
		"worldRank":  p.WorldRank,
		"multiplier": p.Multiplier,
		"locked": pgtype.Timestamptz{
			Time:             p.Locked.UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving pick for team %s week %d: %w", p.TeamID, p.Week, err)
	}
	return nil
}

func (db *postgresDB) GetPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	const query = `SELECT team_id, week, player_id, world_rank, multiplier, locked
					FROM picks WHERE league_id=@leagueID ORDER BY week, team_id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading picks: %w", err)
	}

	results := make([]model.Pick, 0, 16)
	for rows.Next() {
		var p model.Pick
		var locked pgtype.Timestamptz
		err := rows.Scan(&p.TeamID, &p.Week, &p.PlayerID, &p.WorldRank, &p.Multiplier, &locked)
		if err != nil {
			return nil, fmt.Errorf("error scanning pick: %w", err)
		}
		p.Locked = locked.Time

		results = append(results, p)
	}

	return results, nil
}

func (db *postgresDB) SaveBuyback(ctx context.Context, leagueID int32, r *model.BuybackRecord) error {
	const query = `INSERT INTO buybacks (
		league_id,
		team_id,
		week,
		used
	) VALUES (
		@leagueID,
		@teamID,
		@week,
		@used
	)`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"teamID":   r.TeamID,
		"week":     r.Week,
		"used": pgtype.Timestamptz{
			Time:             r.Used.UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving buyback for team %s: %w", r.TeamID, err)
	}
	return nil
}

func (db *postgresDB) GetBuybacks(ctx context.Context, leagueID int32) ([]model.BuybackRecord, error) {
	const query = `SELECT team_id, week, used
					FROM buybacks WHERE league_id=@leagueID ORDER BY week, team_id`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error loading buybacks: %w", err)
	}

	results := make([]model.BuybackRecord, 0, 8)
	for rows.Next() {
		var r model.BuybackRecord
		var used pgtype.Timestamptz
		if err := rows.Scan(&r.TeamID, &r.Week, &used); err != nil {
			return nil, fmt.Errorf("error scanning buyback: %w", err)
		}
		r.Used = used.Time

		results = append(results, r)
	}

	return results, nil
}
