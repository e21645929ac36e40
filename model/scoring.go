package model

import (
	"fmt"
)

// Golf scoring keys. Position points are keyed "position.N" for finishes 1
// through 20, with bucket fallbacks for everything past that.
const (
	KeyPositionTop25     = "position.top25"
	KeyPositionTop30     = "position.top30"
	KeyPositionMadeCut   = "position.madeCut"
	KeyPositionMissedCut = "position.missedCut"

	KeyHoleInOne       = "hole.holeInOne"
	KeyHoleEagle       = "hole.eagle"
	KeyHoleBirdie      = "hole.birdie"
	KeyHolePar         = "hole.par"
	KeyHoleBogey       = "hole.bogey"
	KeyHoleDouble      = "hole.double"
	KeyHoleWorseDouble = "hole.worseThanDouble"

	KeyBonusBogeyFree     = "bonus.bogeyFreeRound"
	KeyBonusBirdieStreak3 = "bonus.birdieStreak3"
	KeyBonusSub70         = "bonus.sub70PerStroke"

	KeySGMultiplier = "sg.totalMultiplier"
)

// NFL scoring keys. Each is a per-unit point value multiplied against the
// matching stat counter.
const (
	KeyPassYard = "passing.yard"
	KeyPassTD   = "passing.td"
	KeyPassInt  = "passing.interception"

	KeyRushYard = "rushing.yard"
	KeyRushTD   = "rushing.td"

	KeyReception = "receiving.reception"
	KeyRecYard   = "receiving.yard"
	KeyRecTD     = "receiving.td"

	KeyFumbleLost = "fumbles.lost"

	KeyKickXP       = "kicking.xp"
	KeyKickFGMade   = "kicking.fgMade"
	KeyKickFGMissed = "kicking.fgMissed"
	KeyKickFG0to39  = "kicking.fg0to39"
	KeyKickFG40to49 = "kicking.fg40to49"
	KeyKickFG50Plus = "kicking.fg50plus"

	KeyDefSack      = "defense.sack"
	KeyDefInt       = "defense.interception"
	KeyDefFumbleRec = "defense.fumbleRecovery"
	KeyDefTD        = "defense.td"
	KeyDefSafety    = "defense.safety"

	KeyBonusPass300 = "bonus.pass300"
	KeyBonusRush100 = "bonus.rush100"
	KeyBonusRec100  = "bonus.rec100"
)

// PositionKey returns the scoring key for an exact finish position.
func PositionKey(pos int) string {
	return fmt.Sprintf("position.%d", pos)
}

// maxExactPosition is the deepest finish with its own point value; finishes
// past it fall back to the top25/top30/madeCut buckets.
const maxExactPosition = 20

// ScoringConfig maps event-type keys to point values. A preset defines a
// value, possibly zero, for every known key of its sport; evaluator lookups
// treat missing keys as zero rather than an error.
type ScoringConfig struct {
	Name      string
	Sport     Sport
	SGEnabled bool
	Values    map[string]float64
}

// Value returns the configured point value for key, or 0 when the key is
// absent.
func (c *ScoringConfig) Value(key string) float64 {
	if c == nil || c.Values == nil {
		return 0
	}
	return c.Values[key]
}

// KnownKeys lists every scoring key the evaluator consults for a sport.
func KnownKeys(sport Sport) []string {
	switch sport {
	case SPORT_GOLF:
		keys := make([]string, 0, maxExactPosition+12)
		for p := 1; p <= maxExactPosition; p++ {
			keys = append(keys, PositionKey(p))
		}
		return append(keys,
			KeyPositionTop25, KeyPositionTop30, KeyPositionMadeCut, KeyPositionMissedCut,
			KeyHoleInOne, KeyHoleEagle, KeyHoleBirdie, KeyHolePar,
			KeyHoleBogey, KeyHoleDouble, KeyHoleWorseDouble,
			KeyBonusBogeyFree, KeyBonusBirdieStreak3, KeyBonusSub70,
			KeySGMultiplier,
		)
	case SPORT_NFL:
		return []string{
			KeyPassYard, KeyPassTD, KeyPassInt,
			KeyRushYard, KeyRushTD,
			KeyReception, KeyRecYard, KeyRecTD,
			KeyFumbleLost,
			KeyKickXP, KeyKickFGMade, KeyKickFGMissed,
			KeyKickFG0to39, KeyKickFG40to49, KeyKickFG50Plus,
			KeyDefSack, KeyDefInt, KeyDefFumbleRec, KeyDefTD, KeyDefSafety,
			KeyBonusPass300, KeyBonusRush100, KeyBonusRec100,
		}
	default:
		return nil
	}
}

// Validate checks that the config defines a value (possibly zero) for every
// known key of the sport.
func (c *ScoringConfig) Validate(sport Sport) error {
	if c.Sport != sport {
		return fmt.Errorf("scoring config is for %s, league is %s", c.Sport, sport)
	}
	for _, k := range KnownKeys(sport) {
		if _, ok := c.Values[k]; !ok {
			return fmt.Errorf("scoring config is missing a value for %s", k)
		}
	}
	return nil
}

// StatLine is the raw performance record for one participant in one week.
// Exactly one of Golf or NFL is set, matching the league's sport; the other
// is nil. Stat lines come from the stats provider and are read-only inputs.
type StatLine struct {
	ParticipantID string
	Week          int
	Golf          *GolfStats
	NFL           *NFLStats
}

type GolfStats struct {
	// FinishPosition is the final leaderboard position, or 0 when the player
	// missed the cut or withdrew.
	FinishPosition int
	MadeCut        bool

	HolesInOne      int
	Eagles          int
	Birdies         int
	Pars            int
	Bogeys          int
	Doubles         int
	WorseThanDouble int

	BogeyFreeRounds int
	BirdieStreaks3  int
	StrokesUnder70  int
	SGTotal         float64
}

type NFLStats struct {
	PassYards     int
	PassTDs       int
	Interceptions int

	RushYards int
	RushTDs   int

	Receptions int
	RecYards   int
	RecTDs     int

	FumblesLost int

	XPMade   int
	FGMade   int
	FGMissed int
	// Distance-bucketed field goal counters. When any bucket is non-zero the
	// evaluator scores kicks by bucket instead of the flat FGMade value.
	FGMade0to39  int
	FGMade40to49 int
	FGMade50Plus int

	Sacks            int
	DefInterceptions int
	FumbleRecoveries int
	DefTDs           int
	Safeties         int
}

// Score categories reported in a ScoreResult breakdown.
const (
	CategoryPosition      = "position"
	CategoryHoles         = "holes"
	CategoryBonus         = "bonus"
	CategoryStrokesGained = "strokesGained"

	CategoryPassing   = "passing"
	CategoryRushing   = "rushing"
	CategoryReceiving = "receiving"
	CategoryFumbles   = "fumbles"
	CategoryKicking   = "kicking"
	CategoryDefense   = "defense"
)

// ScoreResult is a derived value: the rounded total plus the rounded
// per-category breakdown it was summed from. Never persisted, always
// recomputed.
type ScoreResult struct {
	Total     float64
	Breakdown map[string]float64
}
