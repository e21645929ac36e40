package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/league_engine/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, name, year, sport, format string, settings *model.LeagueSettings, teams []model.Team) (*model.League, error) {
	args := c.Called(ctx, name, year, sport, format, settings, teams)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) (*model.League, error) {
	args := c.Called(ctx, id, settings)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GenerateSchedule(ctx context.Context, leagueID int32, periods int) ([]model.SchedulePeriod, error) {
	args := c.Called(ctx, leagueID, periods)

	var res []model.SchedulePeriod
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SchedulePeriod)
	}

	return res, args.Error(1)
}

func (c *C) GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error) {
	args := c.Called(ctx, leagueID)

	var res []model.SchedulePeriod
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SchedulePeriod)
	}

	return res, args.Error(1)
}

func (c *C) RecordResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error {
	args := c.Called(ctx, leagueID, matchups)
	return args.Error(0)
}

func (c *C) GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *C) SyncStats(ctx context.Context, leagueID int32, week int) error {
	args := c.Called(ctx, leagueID, week)
	return args.Error(0)
}

func (c *C) RunPeriodicStatsSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) PreviewScore(ctx context.Context, leagueID int32, stat *model.StatLine) (*model.ScoreResult, error) {
	args := c.Called(ctx, leagueID, stat)

	var res *model.ScoreResult
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ScoreResult)
	}

	return res, args.Error(1)
}

func (c *C) ScoreWeek(ctx context.Context, leagueID int32, week int) (map[string]model.ScoreResult, error) {
	args := c.Called(ctx, leagueID, week)

	var res map[string]model.ScoreResult
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.ScoreResult)
	}

	return res, args.Error(1)
}

func (c *C) Standings(ctx context.Context, leagueID int32) (*model.Standings, error) {
	args := c.Called(ctx, leagueID)

	var res *model.Standings
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Standings)
	}

	return res, args.Error(1)
}

func (c *C) GenerateBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	args := c.Called(ctx, leagueID)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}

	return b, args.Error(1)
}

func (c *C) GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error) {
	args := c.Called(ctx, leagueID)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}

	return b, args.Error(1)
}

func (c *C) RecordPlayoffResult(ctx context.Context, leagueID int32, round, slot int, winnerID string, score1, score2 float64) (*model.Bracket, error) {
	args := c.Called(ctx, leagueID, round, slot, winnerID, score1, score2)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}

	return b, args.Error(1)
}

func (c *C) AdvancePlayoffRound(ctx context.Context, leagueID int32, round int) (*model.Bracket, error) {
	args := c.Called(ctx, leagueID, round)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}

	return b, args.Error(1)
}

func (c *C) SubmitPlayoffSlots(ctx context.Context, leagueID int32, round int, pairs [][2]string) (*model.Bracket, error) {
	args := c.Called(ctx, leagueID, round, pairs)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}

	return b, args.Error(1)
}

func (c *C) LockPick(ctx context.Context, leagueID int32, teamID, playerID string, week, worldRank int) (*model.Pick, error) {
	args := c.Called(ctx, leagueID, teamID, playerID, week, worldRank)

	var p *model.Pick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pick)
	}

	return p, args.Error(1)
}

func (c *C) SurvivorBuyback(ctx context.Context, leagueID int32, teamID string, week int) (*model.BuybackRecord, error) {
	args := c.Called(ctx, leagueID, teamID, week)

	var r *model.BuybackRecord
	if args.Get(0) != nil {
		r = args.Get(0).(*model.BuybackRecord)
	}

	return r, args.Error(1)
}
