package mockdb

import (
	"context"

	"github.com/mww/league_engine/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, league *model.League) error {
	args := db.Called(ctx, league)
	return args.Error(0)
}

func (db *DB) UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) error {
	args := db.Called(ctx, id, settings)
	return args.Error(0)
}

func (db *DB) ArchiveLeague(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) SaveTeam(ctx context.Context, leagueID int32, team *model.Team) error {
	args := db.Called(ctx, leagueID, team)
	return args.Error(0)
}

func (db *DB) SaveSchedule(ctx context.Context, leagueID int32, periods []model.SchedulePeriod) error {
	args := db.Called(ctx, leagueID, periods)
	return args.Error(0)
}

func (db *DB) GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error) {
	args := db.Called(ctx, leagueID)

	var r []model.SchedulePeriod
	if args.Get(0) != nil {
		r = args.Get(0).([]model.SchedulePeriod)
	}
	return r, args.Error(1)
}

func (db *DB) SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	args := db.Called(ctx, leagueID, matchups)
	return args.Error(0)
}

func (db *DB) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	args := db.Called(ctx, leagueID, week)

	var r []model.Matchup
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Matchup)
	}
	return r, args.Error(1)
}

func (db *DB) SaveStatLines(ctx context.Context, leagueID int32, lines []model.StatLine) error {
	args := db.Called(ctx, leagueID, lines)
	return args.Error(0)
}

func (db *DB) GetStatLines(ctx context.Context, leagueID int32, week int) ([]model.StatLine, error) {
	args := db.Called(ctx, leagueID, week)

	var r []model.StatLine
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StatLine)
	}
	return r, args.Error(1)
}

func (db *DB) ListStatWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	args := db.Called(ctx, leagueID)

	var r []int
	if args.Get(0) != nil {
		r = args.Get(0).([]int)
	}
	return r, args.Error(1)
}

func (db *DB) SaveBracket(ctx context.Context, leagueID int32, b *model.Bracket) error {
	args := db.Called(ctx, leagueID, b)
	return args.Error(0)
}

func (db *DB) GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	args := db.Called(ctx, leagueID)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}
	return b, args.Error(1)
}

func (db *DB) SavePick(ctx context.Context, leagueID int32, p *model.Pick) error {
	args := db.Called(ctx, leagueID, p)
	return args.Error(0)
}

func (db *DB) GetPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Pick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pick)
	}
	return r, args.Error(1)
}

func (db *DB) SaveBuyback(ctx context.Context, leagueID int32, r *model.BuybackRecord) error {
	args := db.Called(ctx, leagueID, r)
	return args.Error(0)
}

func (db *DB) GetBuybacks(ctx context.Context, leagueID int32) ([]model.BuybackRecord, error) {
	args := db.Called(ctx, leagueID)

	var r []model.BuybackRecord
	if args.Get(0) != nil {
		r = args.Get(0).([]model.BuybackRecord)
	}
	return r, args.Error(1)
}
