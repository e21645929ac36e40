package model

import (
	"errors"
	"fmt"
	"strings"
)

type Sport string

const (
	SPORT_UNKNOWN Sport = "unknown"
	SPORT_GOLF    Sport = "golf"
	SPORT_NFL     Sport = "nfl"
)

func ParseSport(s string) Sport {
	switch strings.ToLower(s) {
	case "golf":
		return SPORT_GOLF
	case "nfl":
		return SPORT_NFL
	default:
		return SPORT_UNKNOWN
	}
}

type Format string

const (
	FORMAT_UNKNOWN      Format = "unknown"
	FORMAT_FULL_LEAGUE  Format = "full-league"
	FORMAT_HEAD2HEAD    Format = "head-to-head"
	FORMAT_ROTISSERIE   Format = "rotisserie"
	FORMAT_SURVIVOR     Format = "survivor"
	FORMAT_ONE_AND_DONE Format = "one-and-done"
)

func ParseFormat(f string) Format {
	switch strings.ToLower(f) {
	case "full-league":
		return FORMAT_FULL_LEAGUE
	case "head-to-head", "h2h":
		return FORMAT_HEAD2HEAD
	case "rotisserie", "roto":
		return FORMAT_ROTISSERIE
	case "survivor":
		return FORMAT_SURVIVOR
	case "one-and-done":
		return FORMAT_ONE_AND_DONE
	default:
		return FORMAT_UNKNOWN
	}
}

type League struct {
	ID       int32
	Name     string
	Year     string
	Sport    Sport
	Format   Format
	Archived bool
	Settings LeagueSettings
	Teams    []Team
}

type Team struct {
	ID       string
	Name     string
	OwnerID  string
	Seed     int
	Division string
}

type SeedingPolicy string

const (
	SEEDING_FIXED  SeedingPolicy = "fixed"
	SEEDING_RESEED SeedingPolicy = "reseed"
	SEEDING_MANUAL SeedingPolicy = "manual"
)

func ParseSeedingPolicy(p string) (SeedingPolicy, error) {
	switch strings.ToLower(p) {
	case "fixed":
		return SEEDING_FIXED, nil
	case "reseed":
		return SEEDING_RESEED, nil
	case "manual", "commissioner":
		return SEEDING_MANUAL, nil
	default:
		return "", fmt.Errorf("%s is not a supported seeding policy", p)
	}
}

type Tiebreaker string

const (
	TIEBREAK_POINTS_FOR      Tiebreaker = "points_for"
	TIEBREAK_HEAD_TO_HEAD    Tiebreaker = "head_to_head"
	TIEBREAK_POINTS_AGAINST  Tiebreaker = "points_against"
	TIEBREAK_DIVISION_RECORD Tiebreaker = "division_record"
)

// LeagueSettings holds the format-specific configuration for a league. Only
// the sections relevant to the league's format are consulted.
type LeagueSettings struct {
	// ScoringPreset names one of the built-in scoring configs. Ignored when
	// Scoring is set.
	ScoringPreset string
	Scoring       *ScoringConfig

	Segments    SegmentSettings
	Playoffs    PlayoffSettings
	Tiebreakers []Tiebreaker
	Categories  []RotoCategory
	Survivor    SurvivorSettings
	OneAndDone  OneAndDoneSettings
}

type SegmentSettings struct {
	Count int
	Bonus float64
}

type PlayoffSettings struct {
	TeamCount     int
	Policy        SeedingPolicy
	WeeksPerRound int
}

type RotoCategory struct {
	Key string
	// LowerIsBetter inverts the ranking direction, e.g. for scoring average.
	LowerIsBetter bool
}

type SurvivorSettings struct {
	EliminationsPerPeriod int
	BuybackAllowed        bool
	MaxBuybacksPerTeam    int
}

type OneAndDoneSettings struct {
	// Tiers maps world-rank buckets to multipliers. Ordered by MaxWorldRank
	// ascending; the last entry is the catch-all for unranked players.
	Tiers           []PickTier
	MajorMultiplier float64
	MajorWeeks      []int
}

type PickTier struct {
	MaxWorldRank int
	Multiplier   float64
}

const (
	minRotoCategories = 4
	maxRotoCategories = 10
)

// Validate checks the settings sections that apply to the league's format.
// Scoring lookups intentionally default missing keys to zero, so Validate
// never inspects individual point values.
func (l *League) Validate() error {
	if l.Sport == SPORT_UNKNOWN {
		return errors.New("league sport must be golf or nfl")
	}
	if l.Format == FORMAT_UNKNOWN {
		return errors.New("league format is not supported")
	}

	if l.Settings.Scoring != nil {
		if err := l.Settings.Scoring.Validate(l.Sport); err != nil {
			return fmt.Errorf("invalid custom scoring config: %w", err)
		}
	}

	switch l.Format {
	case FORMAT_FULL_LEAGUE:
		if l.Settings.Segments.Count < 0 {
			return errors.New("segment count must not be negative")
		}
	case FORMAT_HEAD2HEAD:
		for _, tb := range l.Settings.Tiebreakers {
			switch tb {
			case TIEBREAK_POINTS_FOR, TIEBREAK_HEAD_TO_HEAD, TIEBREAK_POINTS_AGAINST, TIEBREAK_DIVISION_RECORD:
			default:
				return fmt.Errorf("%s is not a supported tiebreaker", tb)
			}
		}
		if p := l.Settings.Playoffs; p.TeamCount != 0 {
			if p.TeamCount < 2 {
				return errors.New("playoffs require at least 2 teams")
			}
			if len(l.Teams) > 0 && p.TeamCount > len(l.Teams) {
				return fmt.Errorf("playoff team count %d exceeds league size %d", p.TeamCount, len(l.Teams))
			}
		}
	case FORMAT_ROTISSERIE:
		if n := len(l.Settings.Categories); n < minRotoCategories || n > maxRotoCategories {
			return fmt.Errorf("rotisserie leagues require between %d and %d categories, got %d",
				minRotoCategories, maxRotoCategories, n)
		}
		seen := make(map[string]bool)
		for _, c := range l.Settings.Categories {
			if c.Key == "" {
				return errors.New("rotisserie category key must not be empty")
			}
			if seen[c.Key] {
				return fmt.Errorf("duplicate rotisserie category: %s", c.Key)
			}
			seen[c.Key] = true
		}
	case FORMAT_SURVIVOR:
		if l.Settings.Survivor.EliminationsPerPeriod < 1 {
			return errors.New("survivor leagues require at least 1 elimination per period")
		}
		if l.Settings.Survivor.BuybackAllowed && l.Settings.Survivor.MaxBuybacksPerTeam < 1 {
			return errors.New("buyback is allowed but max buybacks per team is 0")
		}
	case FORMAT_ONE_AND_DONE:
		if len(l.Settings.OneAndDone.Tiers) == 0 {
			return errors.New("one-and-done leagues require a tier table")
		}
		prev := 0
		for i, t := range l.Settings.OneAndDone.Tiers {
			if t.MaxWorldRank <= prev && i != len(l.Settings.OneAndDone.Tiers)-1 {
				return errors.New("tier table must be ordered by max world rank ascending")
			}
			prev = t.MaxWorldRank
		}
	}

	return nil
}

// TierMultiplier returns the multiplier for a player's world rank at pick
// time. A rank of 0 (unranked) always falls through to the last tier.
func (s *OneAndDoneSettings) TierMultiplier(worldRank int) float64 {
	if len(s.Tiers) == 0 {
		return 1
	}
	if worldRank > 0 {
		for _, t := range s.Tiers {
			if t.MaxWorldRank > 0 && worldRank <= t.MaxWorldRank {
				return t.Multiplier
			}
		}
	}
	return s.Tiers[len(s.Tiers)-1].Multiplier
}

// IsMajorWeek reports whether the one-and-done major multiplier applies to
// the given week.
func (s *OneAndDoneSettings) IsMajorWeek(week int) bool {
	for _, w := range s.MajorWeeks {
		if w == week {
			return true
		}
	}
	return false
}
