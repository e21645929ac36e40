package db

import (
	"context"

	"github.com/mww/league_engine/model"
)

type DB interface {
	ListLeagues(ctx context.Context) ([]model.League, error)
	// GetLeague returns the league along with its teams, ordered by seed
	// and then by team ID.
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	AddLeague(ctx context.Context, league *model.League) error
	UpdateLeagueSettings(ctx context.Context, id int32, settings *model.LeagueSettings) error
	ArchiveLeague(ctx context.Context, id int32) error

	GetTeams(ctx context.Context, leagueID int32) ([]model.Team, error)
	SaveTeam(ctx context.Context, leagueID int32, team *model.Team) error

	// SaveSchedule replaces any existing schedule for the league and
	// assigns matchup IDs to the given periods.
	SaveSchedule(ctx context.Context, leagueID int32, periods []model.SchedulePeriod) error
	GetSchedule(ctx context.Context, leagueID int32) ([]model.SchedulePeriod, error)
	SaveResults(ctx context.Context, leagueID int32, matchups []model.Matchup) error
	GetResults(ctx context.Context, leagueID int32, week int) ([]model.Matchup, error)

	SaveStatLines(ctx context.Context, leagueID int32, lines []model.StatLine) error
	GetStatLines(ctx context.Context, leagueID int32, week int) ([]model.StatLine, error)
	// ListStatWeeks returns the weeks that have stat lines recorded, in
	// ascending order.
	ListStatWeeks(ctx context.Context, leagueID int32) ([]int, error)

	SaveBracket(ctx context.Context, leagueID int32, b *model.Bracket) error
	GetBracket(ctx context.Context, leagueID int32) (*model.Bracket, error)

	SavePick(ctx context.Context, leagueID int32, p *model.Pick) error
	GetPicks(ctx context.Context, leagueID int32) ([]model.Pick, error)

	SaveBuyback(ctx context.Context, leagueID int32, r *model.BuybackRecord) error
	GetBuybacks(ctx context.Context, leagueID int32) ([]model.BuybackRecord, error)
}
