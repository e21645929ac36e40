package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/league_engine/db"
	"github.com/mww/league_engine/model"
	"github.com/mww/league_engine/platforms/statsfeed"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListLeagues(ctx context.Context) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, name, year, sport, format string, settings *model.LeagueSettings, teams []model.Team) (*model.League, error)
	UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) (*model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error

	// GenerateSchedule replaces the league's schedule with a fresh
	// round-robin over the requested number of weeks.
	GenerateSchedule(ctx context.Context, leagueID int32, periods int) ([]model.SchedulePeriod, error)
	GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error)
	RecordResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error
	GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error)

	// SyncStats pulls a week of raw stats from the provider and stores them.
	SyncStats(ctx context.Context, leagueID int32, week int) error
	RunPeriodicStatsSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// PreviewScore evaluates a hypothetical stat line against the league's
	// scoring config without persisting anything.
	PreviewScore(ctx context.Context, leagueID int32, stat *model.StatLine) (*model.ScoreResult, error)
	// ScoreWeek evaluates every stored stat line for the week, keyed by
	// participant ID.
	ScoreWeek(ctx context.Context, leagueID int32, week int) (map[string]model.ScoreResult, error)

	Standings(ctx context.Context, leagueID int32) (*model.Standings, error)

	GenerateBracket(ctx context.Context, leagueID int32) (*model.Bracket, error)
	GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error)
	RecordPlayoffResult(ctx context.Context, leagueID int32, round, slot int, winnerID string, score1, score2 float64) (*model.Bracket, error)
	AdvancePlayoffRound(ctx context.Context, leagueID int32, round int) (*model.Bracket, error)
	SubmitPlayoffSlots(ctx context.Context, leagueID int32, round int, pairs [][2]string) (*model.Bracket, error)

	LockPick(ctx context.Context, leagueID int32, teamID, playerID string, week, worldRank int) (*model.Pick, error)
	SurvivorBuyback(ctx context.Context, leagueID int32, teamID string, week int) (*model.BuybackRecord, error)
}

type controller struct {
	clock clock.Clock
	stats statsfeed.Client
	db    db.DB
}

func New(clock clock.Clock, stats statsfeed.Client, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		stats: stats,
		db:    db,
	}
	return c, nil
}
