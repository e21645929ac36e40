package engine

import (
	"reflect"
	"testing"

	"github.com/mww/league_engine/model"
)

// The standard golf preview scenario: a 5th place finish with 22 birdies,
// 2 eagles, 38 pars, 8 bogeys, 1 double, a bogey-free round, and one
// 3-birdie streak.
func standardGolfLine() *model.StatLine {
	return &model.StatLine{
		ParticipantID: "p1",
		Week:          4,
		Golf: &model.GolfStats{
			FinishPosition:  5,
			MadeCut:         true,
			Birdies:         22,
			Eagles:          2,
			Pars:            38,
			Bogeys:          8,
			Doubles:         1,
			BogeyFreeRounds: 1,
			BirdieStreaks3:  1,
		},
	}
}

func TestEvaluateGolfStandard(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading standard preset: %v", err)
	}

	got := Evaluate(config, standardGolfLine())

	want := model.ScoreResult{
		Total: 86,
		Breakdown: map[string]float64{
			// 22*3 + 2*5 + 38*0 + 8*-1 + 1*-2
			model.CategoryHoles: 66,
			// bogey-free 3 + birdie streak 3
			model.CategoryBonus:    6,
			model.CategoryPosition: 14,
		},
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading standard preset: %v", err)
	}

	stat := standardGolfLine()
	first := Evaluate(config, stat)
	second := Evaluate(config, stat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat evaluation differed: %+v vs %+v", first, second)
	}
}

func TestGolfPositionFallbacks(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading standard preset: %v", err)
	}

	tests := []struct {
		name string
		golf model.GolfStats
		want float64
	}{
		{name: "winner", golf: model.GolfStats{FinishPosition: 1, MadeCut: true}, want: 30},
		{name: "20th", golf: model.GolfStats{FinishPosition: 20, MadeCut: true}, want: 1},
		{name: "top25 bucket", golf: model.GolfStats{FinishPosition: 23, MadeCut: true}, want: 1},
		{name: "top30 bucket", golf: model.GolfStats{FinishPosition: 28, MadeCut: true}, want: 0.5},
		{name: "past 30", golf: model.GolfStats{FinishPosition: 47, MadeCut: true}, want: 0.25},
		{name: "made cut no position", golf: model.GolfStats{MadeCut: true}, want: 0.25},
		{name: "missed cut", golf: model.GolfStats{}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(config, &model.StatLine{Golf: &tc.golf})
			if got := res.Breakdown[model.CategoryPosition]; got != tc.want {
				t.Errorf("expected %v position points, got %v", tc.want, got)
			}
		})
	}
}

func TestGolfStrokesGainedOnlyWhenEnabled(t *testing.T) {
	stat := &model.StatLine{Golf: &model.GolfStats{FinishPosition: 10, MadeCut: true, SGTotal: 2.5}}

	standard, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading standard preset: %v", err)
	}
	res := Evaluate(standard, stat)
	if _, ok := res.Breakdown[model.CategoryStrokesGained]; ok {
		t.Errorf("standard preset should not report a strokes gained category")
	}

	sg, err := Preset(PresetSGHeavy, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading sg-heavy preset: %v", err)
	}
	res = Evaluate(sg, stat)
	if got := res.Breakdown[model.CategoryStrokesGained]; got != 5 {
		t.Errorf("expected 5 strokes gained points, got %v", got)
	}
}

func TestEvaluateMissingStats(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading standard preset: %v", err)
	}

	// A nil stat line and a stat line with no golf section both score zero
	// in every category rather than failing.
	for _, stat := range []*model.StatLine{nil, {ParticipantID: "p1"}} {
		res := Evaluate(config, stat)
		if res.Total != 0 {
			t.Errorf("expected total of 0, got %v", res.Total)
		}
		for cat, v := range res.Breakdown {
			if v != 0 {
				t.Errorf("expected category %s to be 0, got %v", cat, v)
			}
		}
	}
}

func TestEvaluateNFL(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_NFL)
	if err != nil {
		t.Fatalf("error loading nfl preset: %v", err)
	}

	stat := &model.StatLine{
		NFL: &model.NFLStats{
			PassYards:     325,
			PassTDs:       3,
			Interceptions: 1,
			RushYards:     12,
			FumblesLost:   1,
		},
	}

	res := Evaluate(config, stat)

	// 325*0.04 + 3*4 - 2 = 23
	if got := res.Breakdown[model.CategoryPassing]; got != 23 {
		t.Errorf("expected 23 passing points, got %v", got)
	}
	if got := res.Breakdown[model.CategoryRushing]; got != 1.2 {
		t.Errorf("expected 1.2 rushing points, got %v", got)
	}
	if got := res.Breakdown[model.CategoryFumbles]; got != -2 {
		t.Errorf("expected -2 fumble points, got %v", got)
	}
	// 300+ passing yards bonus
	if got := res.Breakdown[model.CategoryBonus]; got != 3 {
		t.Errorf("expected 3 bonus points, got %v", got)
	}
	if res.Total != 25.2 {
		t.Errorf("expected total of 25.2, got %v", res.Total)
	}
}

func TestNFLKickingBuckets(t *testing.T) {
	config, err := Preset(PresetStandard, model.SPORT_NFL)
	if err != nil {
		t.Fatalf("error loading nfl preset: %v", err)
	}

	tests := []struct {
		name string
		nfl  model.NFLStats
		want float64
	}{
		{
			name: "flat per-make when no buckets",
			nfl:  model.NFLStats{FGMade: 3, FGMissed: 1, XPMade: 2},
			want: 3*3 - 1 + 2,
		},
		{
			name: "bucketed values win when present",
			nfl:  model.NFLStats{FGMade: 3, FGMade0to39: 1, FGMade40to49: 1, FGMade50Plus: 1, XPMade: 2},
			want: 3 + 4 + 5 + 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(config, &model.StatLine{NFL: &tc.nfl})
			if got := res.Breakdown[model.CategoryKicking]; got != tc.want {
				t.Errorf("expected %v kicking points, got %v", tc.want, got)
			}
		})
	}
}

func TestCategoryRoundingOrder(t *testing.T) {
	// Category values round before the total is summed: two categories of
	// 0.005 each round up to 0.01 and total 0.02, where rounding the raw sum
	// once would also give 0.01.
	config := &model.ScoringConfig{
		Sport: model.SPORT_NFL,
		Values: map[string]float64{
			model.KeyPassYard: 0.005,
			model.KeyRushYard: 0.005,
		},
	}

	res := Evaluate(config, &model.StatLine{NFL: &model.NFLStats{PassYards: 1, RushYards: 1}})
	if got := res.Breakdown[model.CategoryPassing]; got != 0.01 {
		t.Errorf("expected passing to round to 0.01, got %v", got)
	}
	if res.Total != 0.02 {
		t.Errorf("expected total of 0.02, got %v", res.Total)
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("turbo", model.SPORT_GOLF); err == nil {
		t.Errorf("expected an error for an unknown preset")
	}
	if _, err := Preset(PresetSGHeavy, model.SPORT_NFL); err == nil {
		t.Errorf("expected an error for a golf preset on an nfl league")
	}
}

func TestPresetsAreComplete(t *testing.T) {
	tests := []struct {
		name  string
		sport model.Sport
	}{
		{name: PresetStandard, sport: model.SPORT_GOLF},
		{name: PresetAggressive, sport: model.SPORT_GOLF},
		{name: PresetSGHeavy, sport: model.SPORT_GOLF},
		{name: PresetStandard, sport: model.SPORT_NFL},
	}

	for _, tc := range tests {
		t.Run(string(tc.sport)+"/"+tc.name, func(t *testing.T) {
			c, err := Preset(tc.name, tc.sport)
			if err != nil {
				t.Fatalf("error loading preset: %v", err)
			}
			if err := c.Validate(tc.sport); err != nil {
				t.Errorf("preset does not define every known key: %v", err)
			}
		})
	}
}

func TestPresetReturnsCopy(t *testing.T) {
	a, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading preset: %v", err)
	}
	a.Values[model.KeyHoleBirdie] = 100

	b, err := Preset(PresetStandard, model.SPORT_GOLF)
	if err != nil {
		t.Fatalf("error loading preset: %v", err)
	}
	if got := b.Value(model.KeyHoleBirdie); got != 3 {
		t.Errorf("preset table was mutated, birdie value is now %v", got)
	}
}
