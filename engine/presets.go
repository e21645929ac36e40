package engine

import (
	"fmt"
	"strings"

	"github.com/mww/league_engine/model"
)

// Preset names. Golf leagues can pick any of the golf presets, NFL leagues
// only have the standard one.
const (
	PresetStandard   = "standard"
	PresetAggressive = "aggressive"
	PresetSGHeavy    = "sg-heavy"
)

// Preset returns a copy of the named scoring preset for a sport. Unknown
// names are a validation error, not a silent default.
func Preset(name string, sport model.Sport) (*model.ScoringConfig, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var src *model.ScoringConfig
	switch sport {
	case model.SPORT_GOLF:
		switch name {
		case PresetStandard:
			src = &golfStandard
		case PresetAggressive:
			src = &golfAggressive
		case PresetSGHeavy:
			src = &golfSGHeavy
		}
	case model.SPORT_NFL:
		if name == PresetStandard {
			src = &nflStandard
		}
	}
	if src == nil {
		return nil, fmt.Errorf("%s is not a %s scoring preset", name, sport)
	}

	// Copy so that callers can never mutate the shared preset tables.
	c := &model.ScoringConfig{
		Name:      src.Name,
		Sport:     src.Sport,
		SGEnabled: src.SGEnabled,
		Values:    make(map[string]float64, len(src.Values)),
	}
	for k, v := range src.Values {
		c.Values[k] = v
	}
	return c, nil
}

// golfPositions builds a position table from the 20 exact-finish values plus
// the four bucket fallbacks.
func golfPositions(exact [20]float64, top25, top30, madeCut, missedCut float64) map[string]float64 {
	m := make(map[string]float64, 24)
	for i, v := range exact {
		m[model.PositionKey(i+1)] = v
	}
	m[model.KeyPositionTop25] = top25
	m[model.KeyPositionTop30] = top30
	m[model.KeyPositionMadeCut] = madeCut
	m[model.KeyPositionMissedCut] = missedCut
	return m
}

func merge(maps ...map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var golfStandard = model.ScoringConfig{
	Name:  PresetStandard,
	Sport: model.SPORT_GOLF,
	Values: merge(
		golfPositions(
			[20]float64{30, 20, 18, 16, 14, 12, 10, 9, 8, 7, 6, 5, 5, 4, 4, 3, 3, 2, 2, 1},
			1, 0.5, 0.25, 0,
		),
		map[string]float64{
			model.KeyHoleInOne:       10,
			model.KeyHoleEagle:       5,
			model.KeyHoleBirdie:      3,
			model.KeyHolePar:         0,
			model.KeyHoleBogey:       -1,
			model.KeyHoleDouble:      -2,
			model.KeyHoleWorseDouble: -3,

			model.KeyBonusBogeyFree:     3,
			model.KeyBonusBirdieStreak3: 3,
			model.KeyBonusSub70:         1,

			model.KeySGMultiplier: 0,
		},
	),
}

var golfAggressive = model.ScoringConfig{
	Name:  PresetAggressive,
	Sport: model.SPORT_GOLF,
	Values: merge(
		golfPositions(
			[20]float64{50, 30, 25, 22, 20, 18, 16, 14, 12, 10, 8, 7, 6, 5, 4, 3, 3, 2, 2, 1},
			1, 0.5, 0, -1,
		),
		map[string]float64{
			model.KeyHoleInOne:       20,
			model.KeyHoleEagle:       8,
			model.KeyHoleBirdie:      4,
			model.KeyHolePar:         0,
			model.KeyHoleBogey:       -2,
			model.KeyHoleDouble:      -4,
			model.KeyHoleWorseDouble: -6,

			model.KeyBonusBogeyFree:     5,
			model.KeyBonusBirdieStreak3: 5,
			model.KeyBonusSub70:         2,

			model.KeySGMultiplier: 0,
		},
	),
}

var golfSGHeavy = model.ScoringConfig{
	Name:      PresetSGHeavy,
	Sport:     model.SPORT_GOLF,
	SGEnabled: true,
	Values: merge(
		golfPositions(
			[20]float64{15, 10, 9, 8, 7, 6, 5, 5, 4, 4, 3, 3, 2, 2, 2, 1, 1, 1, 1, 1},
			0.5, 0.25, 0, 0,
		),
		map[string]float64{
			model.KeyHoleInOne:       5,
			model.KeyHoleEagle:       3,
			model.KeyHoleBirdie:      1,
			model.KeyHolePar:         0,
			model.KeyHoleBogey:       -0.5,
			model.KeyHoleDouble:      -1,
			model.KeyHoleWorseDouble: -1.5,

			model.KeyBonusBogeyFree:     2,
			model.KeyBonusBirdieStreak3: 2,
			model.KeyBonusSub70:         0.5,

			model.KeySGMultiplier: 2,
		},
	),
}

var nflStandard = model.ScoringConfig{
	Name:  PresetStandard,
	Sport: model.SPORT_NFL,
	Values: map[string]float64{
		model.KeyPassYard: 0.04,
		model.KeyPassTD:   4,
		model.KeyPassInt:  -2,

		model.KeyRushYard: 0.1,
		model.KeyRushTD:   6,

		model.KeyReception: 0.5,
		model.KeyRecYard:   0.1,
		model.KeyRecTD:     6,

		model.KeyFumbleLost: -2,

		model.KeyKickXP:       1,
		model.KeyKickFGMade:   3,
		model.KeyKickFGMissed: -1,
		model.KeyKickFG0to39:  3,
		model.KeyKickFG40to49: 4,
		model.KeyKickFG50Plus: 5,

		model.KeyDefSack:      1,
		model.KeyDefInt:       2,
		model.KeyDefFumbleRec: 2,
		model.KeyDefTD:        6,
		model.KeyDefSafety:    2,

		model.KeyBonusPass300: 3,
		model.KeyBonusRush100: 3,
		model.KeyBonusRec100:  3,
	},
}
