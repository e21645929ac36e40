package statsfeed

import (
	"github.com/mww/league_engine/model"
)

type golfResult struct {
	PlayerID       string  `json:"player_id"`
	FinishPosition int     `json:"finish_position"`
	MadeCut        bool    `json:"made_cut"`
	HolesInOne     int     `json:"holes_in_one"`
	Eagles         int     `json:"eagles"`
	Birdies        int     `json:"birdies"`
	Pars           int     `json:"pars"`
	Bogeys         int     `json:"bogeys"`
	Doubles        int     `json:"double_bogeys"`
	WorseThanDbl   int     `json:"worse_than_double"`
	BogeyFreeRds   int     `json:"bogey_free_rounds"`
	BirdieStreaks  int     `json:"birdie_streaks_3"`
	StrokesUnder70 int     `json:"strokes_under_70"`
	SGTotal        float64 `json:"sg_total"`
}

func (r *golfResult) toStatLine(week int) *model.StatLine {
	return &model.StatLine{
		ParticipantID: r.PlayerID,
		Week:          week,
		Golf: &model.GolfStats{
			FinishPosition:  r.FinishPosition,
			MadeCut:         r.MadeCut,
			HolesInOne:      r.HolesInOne,
			Eagles:          r.Eagles,
			Birdies:         r.Birdies,
			Pars:            r.Pars,
			Bogeys:          r.Bogeys,
			Doubles:         r.Doubles,
			WorseThanDouble: r.WorseThanDbl,
			BogeyFreeRounds: r.BogeyFreeRds,
			BirdieStreaks3:  r.BirdieStreaks,
			StrokesUnder70:  r.StrokesUnder70,
			SGTotal:         r.SGTotal,
		},
	}
}

type nflResult struct {
	PlayerID string `json:"player_id"`

	PassYards     int `json:"pass_yd"`
	PassTDs       int `json:"pass_td"`
	Interceptions int `json:"pass_int"`

	RushYards int `json:"rush_yd"`
	RushTDs   int `json:"rush_td"`

	Receptions int `json:"rec"`
	RecYards   int `json:"rec_yd"`
	RecTDs     int `json:"rec_td"`

	FumblesLost int `json:"fum_lost"`

	XPMade       int `json:"xpm"`
	FGMade       int `json:"fgm"`
	FGMissed     int `json:"fgmiss"`
	FGMade0to39  int `json:"fgm_0_39"`
	FGMade40to49 int `json:"fgm_40_49"`
	FGMade50Plus int `json:"fgm_50p"`

	Sacks            int `json:"def_sack"`
	DefInterceptions int `json:"def_int"`
	FumbleRecoveries int `json:"def_fum_rec"`
	DefTDs           int `json:"def_td"`
	Safeties         int `json:"def_safety"`
}

func (r *nflResult) toStatLine(week int) *model.StatLine {
	return &model.StatLine{
		ParticipantID: r.PlayerID,
		Week:          week,
		NFL: &model.NFLStats{
			PassYards:        r.PassYards,
			PassTDs:          r.PassTDs,
			Interceptions:    r.Interceptions,
			RushYards:        r.RushYards,
			RushTDs:          r.RushTDs,
			Receptions:       r.Receptions,
			RecYards:         r.RecYards,
			RecTDs:           r.RecTDs,
			FumblesLost:      r.FumblesLost,
			XPMade:           r.XPMade,
			FGMade:           r.FGMade,
			FGMissed:         r.FGMissed,
			FGMade0to39:      r.FGMade0to39,
			FGMade40to49:     r.FGMade40to49,
			FGMade50Plus:     r.FGMade50Plus,
			Sacks:            r.Sacks,
			DefInterceptions: r.DefInterceptions,
			FumbleRecoveries: r.FumbleRecoveries,
			DefTDs:           r.DefTDs,
			Safeties:         r.Safeties,
		},
	}
}
