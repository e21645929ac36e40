package engine

import (
	"math"

	"github.com/mww/league_engine/model"
)

// Evaluate computes the score for one stat line under a scoring config. It
// is a pure function: the same config and stat line always produce the same
// result, which makes it safe to use for both live previews and actual
// scoring without any risk of the two drifting apart.
//
// Each category is rounded to 2 decimal places first, and the total is the
// rounded sum of the rounded categories. Missing config keys and absent stat
// sections contribute zero.
func Evaluate(config *model.ScoringConfig, stat *model.StatLine) model.ScoreResult {
	switch {
	case config == nil:
		return model.ScoreResult{Breakdown: map[string]float64{}}
	case config.Sport == model.SPORT_GOLF:
		return evaluateGolf(config, stat)
	case config.Sport == model.SPORT_NFL:
		return evaluateNFL(config, stat)
	default:
		return model.ScoreResult{Breakdown: map[string]float64{}}
	}
}

func evaluateGolf(c *model.ScoringConfig, stat *model.StatLine) model.ScoreResult {
	var g model.GolfStats
	if stat != nil && stat.Golf != nil {
		g = *stat.Golf
	}

	breakdown := map[string]float64{
		model.CategoryPosition: round2(positionPoints(c, &g)),
		model.CategoryHoles:    round2(holePoints(c, &g)),
		model.CategoryBonus:    round2(bonusPoints(c, &g)),
	}
	if c.SGEnabled {
		breakdown[model.CategoryStrokesGained] = round2(g.SGTotal * c.Value(model.KeySGMultiplier))
	}

	return model.ScoreResult{Total: sumRounded(breakdown), Breakdown: breakdown}
}

// positionPoints looks up the finish position with bucket fallbacks: an
// exact value for finishes 1-20, then top25, top30, and madeCut. A player
// with no finish position scores the madeCut or missedCut value.
func positionPoints(c *model.ScoringConfig, g *model.GolfStats) float64 {
	if g.FinishPosition <= 0 {
		if g.MadeCut {
			return c.Value(model.KeyPositionMadeCut)
		}
		return c.Value(model.KeyPositionMissedCut)
	}

	switch {
	case g.FinishPosition <= 20:
		return c.Value(model.PositionKey(g.FinishPosition))
	case g.FinishPosition <= 25:
		return c.Value(model.KeyPositionTop25)
	case g.FinishPosition <= 30:
		return c.Value(model.KeyPositionTop30)
	default:
		return c.Value(model.KeyPositionMadeCut)
	}
}

func holePoints(c *model.ScoringConfig, g *model.GolfStats) float64 {
	return float64(g.HolesInOne)*c.Value(model.KeyHoleInOne) +
		float64(g.Eagles)*c.Value(model.KeyHoleEagle) +
		float64(g.Birdies)*c.Value(model.KeyHoleBirdie) +
		float64(g.Pars)*c.Value(model.KeyHolePar) +
		float64(g.Bogeys)*c.Value(model.KeyHoleBogey) +
		float64(g.Doubles)*c.Value(model.KeyHoleDouble) +
		float64(g.WorseThanDouble)*c.Value(model.KeyHoleWorseDouble)
}

func bonusPoints(c *model.ScoringConfig, g *model.GolfStats) float64 {
	return float64(g.BogeyFreeRounds)*c.Value(model.KeyBonusBogeyFree) +
		float64(g.BirdieStreaks3)*c.Value(model.KeyBonusBirdieStreak3) +
		float64(g.StrokesUnder70)*c.Value(model.KeyBonusSub70)
}

func evaluateNFL(c *model.ScoringConfig, stat *model.StatLine) model.ScoreResult {
	var n model.NFLStats
	if stat != nil && stat.NFL != nil {
		n = *stat.NFL
	}

	breakdown := map[string]float64{
		model.CategoryPassing: round2(
			float64(n.PassYards)*c.Value(model.KeyPassYard) +
				float64(n.PassTDs)*c.Value(model.KeyPassTD) +
				float64(n.Interceptions)*c.Value(model.KeyPassInt)),
		model.CategoryRushing: round2(
			float64(n.RushYards)*c.Value(model.KeyRushYard) +
				float64(n.RushTDs)*c.Value(model.KeyRushTD)),
		model.CategoryReceiving: round2(
			float64(n.Receptions)*c.Value(model.KeyReception) +
				float64(n.RecYards)*c.Value(model.KeyRecYard) +
				float64(n.RecTDs)*c.Value(model.KeyRecTD)),
		model.CategoryFumbles: round2(
			float64(n.FumblesLost) * c.Value(model.KeyFumbleLost)),
		model.CategoryKicking: round2(kickingPoints(c, &n)),
		model.CategoryDefense: round2(
			float64(n.Sacks)*c.Value(model.KeyDefSack) +
				float64(n.DefInterceptions)*c.Value(model.KeyDefInt) +
				float64(n.FumbleRecoveries)*c.Value(model.KeyDefFumbleRec) +
				float64(n.DefTDs)*c.Value(model.KeyDefTD) +
				float64(n.Safeties)*c.Value(model.KeyDefSafety)),
		model.CategoryBonus: round2(nflBonusPoints(c, &n)),
	}

	return model.ScoreResult{Total: sumRounded(breakdown), Breakdown: breakdown}
}

// kickingPoints uses the distance-bucketed values when any bucketed counter
// is present, otherwise falls back to the flat per-make value.
func kickingPoints(c *model.ScoringConfig, n *model.NFLStats) float64 {
	pts := float64(n.XPMade)*c.Value(model.KeyKickXP) +
		float64(n.FGMissed)*c.Value(model.KeyKickFGMissed)

	if n.FGMade0to39+n.FGMade40to49+n.FGMade50Plus > 0 {
		return pts +
			float64(n.FGMade0to39)*c.Value(model.KeyKickFG0to39) +
			float64(n.FGMade40to49)*c.Value(model.KeyKickFG40to49) +
			float64(n.FGMade50Plus)*c.Value(model.KeyKickFG50Plus)
	}
	return pts + float64(n.FGMade)*c.Value(model.KeyKickFGMade)
}

func nflBonusPoints(c *model.ScoringConfig, n *model.NFLStats) float64 {
	var pts float64
	if n.PassYards >= 300 {
		pts += c.Value(model.KeyBonusPass300)
	}
	if n.RushYards >= 100 {
		pts += c.Value(model.KeyBonusRush100)
	}
	if n.RecYards >= 100 {
		pts += c.Value(model.KeyBonusRec100)
	}
	return pts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sumRounded(breakdown map[string]float64) float64 {
	var total float64
	for _, v := range breakdown {
		total += v
	}
	return round2(total)
}
