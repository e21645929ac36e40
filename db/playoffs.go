package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mww/league_engine/model"
)

func (db *postgresDB) SaveBracket(ctx context.Context, leagueID int32, b *model.Bracket) error {
	if b == nil {
		return errors.New("SaveBracket - bracket is nil")
	}
	const query = `INSERT INTO brackets (
		league_id,
		bracket,
		updated
	) VALUES (
		@leagueID,
		@bracket,
		@updated
	) ON CONFLICT (league_id) DO UPDATE
		SET bracket=excluded.bracket,
			updated=excluded.updated`

	enc, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("error encoding bracket: %w", err)
	}

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"bracket":  enc,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving bracket for league %d: %w", leagueID, err)
	}
	return nil
}

func (db *postgresDB) GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	const query = `SELECT bracket FROM brackets WHERE league_id=@leagueID`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
	}
	var enc []byte
	if err := db.pool.QueryRow(ctx, query, args).Scan(&enc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBracketNotFound
		}
		return nil, fmt.Errorf("error loading bracket for league %d: %w", leagueID, err)
	}

	var b model.Bracket
	if err := json.Unmarshal(enc, &b); err != nil {
		return nil, fmt.Errorf("error decoding bracket for league %d: %w", leagueID, err)
	}
	return &b, nil
}
