package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/league_engine/containers"
	"github.com/mww/league_engine/db"
	"github.com/mww/league_engine/model"
)

// Fixture teams shared by the controller and web tests.
var FixtureTeams = []model.Team{
	{ID: "t1", Name: "Fairway Bandits", OwnerID: "o1", Seed: 1},
	{ID: "t2", Name: "Rough Riders", OwnerID: "o2", Seed: 2},
	{ID: "t3", Name: "Sand Savers", OwnerID: "o3", Seed: 3},
	{ID: "t4", Name: "Bogey Men", OwnerID: "o4", Seed: 4},
}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// NewGolfLeague returns an unsaved golf league using the standard preset and
// the fixture teams, with sensible settings for the format.
func NewGolfLeague(name string, format model.Format) *model.League {
	teams := make([]model.Team, len(FixtureTeams))
	copy(teams, FixtureTeams)

	l := &model.League{
		Name:   name,
		Year:   "2025",
		Sport:  model.SPORT_GOLF,
		Format: format,
		Settings: model.LeagueSettings{
			ScoringPreset: "standard",
		},
		Teams: teams,
	}

	switch format {
	case model.FORMAT_HEAD2HEAD:
		l.Settings.Tiebreakers = []model.Tiebreaker{
			model.TIEBREAK_POINTS_FOR,
			model.TIEBREAK_HEAD_TO_HEAD,
		}
		l.Settings.Playoffs = model.PlayoffSettings{
			TeamCount: 4,
			Policy:    model.SEEDING_FIXED,
		}
	case model.FORMAT_ROTISSERIE:
		l.Settings.Categories = []model.RotoCategory{
			{Key: "birdies"},
			{Key: "eagles"},
			{Key: "sg_total"},
			{Key: "bogeys", LowerIsBetter: true},
		}
	case model.FORMAT_SURVIVOR:
		l.Settings.Survivor = model.SurvivorSettings{
			EliminationsPerPeriod: 1,
			BuybackAllowed:        true,
			MaxBuybacksPerTeam:    1,
		}
	case model.FORMAT_ONE_AND_DONE:
		l.Settings.OneAndDone = model.OneAndDoneSettings{
			Tiers: []model.PickTier{
				{MaxWorldRank: 10, Multiplier: 1},
				{MaxWorldRank: 0, Multiplier: 1.5},
			},
			MajorMultiplier: 2,
			MajorWeeks:      []int{3},
		}
	}

	return l
}

// InsertTeamStatLines saves one golf stat line per fixture team for the
// given week, with finishes improving down the list so t4 scores highest.
func InsertTeamStatLines(d db.DB, leagueID int32, week int) error {
	lines := make([]model.StatLine, 0, len(FixtureTeams))
	for i, team := range FixtureTeams {
		lines = append(lines, model.StatLine{
			ParticipantID: team.ID,
			Week:          week,
			Golf: &model.GolfStats{
				FinishPosition: 20 - i*5,
				MadeCut:        true,
				Birdies:        8 + i*4,
				Pars:           40,
				Bogeys:         10 - i*2,
				SGTotal:        float64(i) * 1.5,
			},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return d.SaveStatLines(ctx, leagueID, lines)
}
