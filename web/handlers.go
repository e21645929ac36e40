package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mww/league_engine/controller"
	"github.com/mww/league_engine/db"
	"github.com/mww/league_engine/engine"
	"github.com/mww/league_engine/model"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps controller errors onto status codes: missing rows are a
// 404, the engine's state-conflict sentinels are a 409, and anything else
// surfaces as a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrLeagueNotFound), errors.Is(err, db.ErrBracketNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrPickAlreadyUsed),
		errors.Is(err, engine.ErrWeekAlreadyPicked),
		errors.Is(err, engine.ErrMatchAlreadyDecided),
		errors.Is(err, engine.ErrRoundIncomplete),
		errors.Is(err, engine.ErrRoundAlreadyAdvanced),
		errors.Is(err, engine.ErrBuybackNotAllowed),
		errors.Is(err, engine.ErrTeamNotEliminated),
		errors.Is(err, engine.ErrBuybackLimitReached):
		status = http.StatusConflict
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func badRequest(render *render.Render, w http.ResponseWriter, format string, args ...any) {
	render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func leagueID(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		return 0, fmt.Errorf("error parsing league id: %w", err)
	}
	return int32(id), nil
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing request body: %w", err)
	}
	return nil
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string                `json:"name"`
			Year     string                `json:"year"`
			Sport    string                `json:"sport"`
			Format   string                `json:"format"`
			Settings *model.LeagueSettings `json:"settings"`
			Teams    []model.Team          `json:"teams"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		l, err := ctrl.AddLeague(r.Context(), req.Name, req.Year, req.Sport, req.Format, req.Settings, req.Teams)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}
		render.JSON(w, http.StatusCreated, l)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func archiveLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		if err := ctrl.ArchiveLeague(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func updateSettingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var settings model.LeagueSettings
		if err := decodeBody(r, &settings); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		l, err := ctrl.UpdateLeagueSettings(r.Context(), id, &settings)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func getScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		schedule, err := ctrl.GetSchedule(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, schedule)
	}
}

func generateScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			Weeks int `json:"weeks"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		schedule, err := ctrl.GenerateSchedule(r.Context(), id, req.Weeks)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, schedule)
	}
}

func getResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			badRequest(render, w, "error parsing week: %v", err)
			return
		}

		results, err := ctrl.GetResults(r.Context(), id, week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, results)
	}
}

func recordResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var matchups []model.Matchup
		if err := decodeBody(r, &matchups); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		if err := ctrl.RecordResults(r.Context(), id, matchups); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func syncStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			badRequest(render, w, "error parsing week: %v", err)
			return
		}

		if err := ctrl.SyncStats(r.Context(), id, week); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func previewScoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var stat model.StatLine
		if err := decodeBody(r, &stat); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		result, err := ctrl.PreviewScore(r.Context(), id, &stat)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, result)
	}
}

func scoreWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		week, err := strconv.Atoi(r.URL.Query().Get("week"))
		if err != nil {
			badRequest(render, w, "error parsing week: %v", err)
			return
		}

		scores, err := ctrl.ScoreWeek(r.Context(), id, week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, scores)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		standings, err := ctrl.Standings(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func getBracketHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		b, err := ctrl.GetBracket(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, b)
	}
}

func generateBracketHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		b, err := ctrl.GenerateBracket(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, b)
	}
}

func playoffResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			Round    int     `json:"round"`
			Slot     int     `json:"slot"`
			WinnerID string  `json:"winnerId"`
			Score1   float64 `json:"score1"`
			Score2   float64 `json:"score2"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		b, err := ctrl.RecordPlayoffResult(r.Context(), id, req.Round, req.Slot, req.WinnerID, req.Score1, req.Score2)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, b)
	}
}

func advanceRoundHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			Round int `json:"round"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		b, err := ctrl.AdvancePlayoffRound(r.Context(), id, req.Round)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, b)
	}
}

func submitSlotsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			Round int         `json:"round"`
			Pairs [][2]string `json:"pairs"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		b, err := ctrl.SubmitPlayoffSlots(r.Context(), id, req.Round, req.Pairs)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, b)
	}
}

func lockPickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			TeamID    string `json:"teamId"`
			PlayerID  string `json:"playerId"`
			Week      int    `json:"week"`
			WorldRank int    `json:"worldRank"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		p, err := ctrl.LockPick(r.Context(), id, req.TeamID, req.PlayerID, req.Week, req.WorldRank)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, p)
	}
}

func buybackHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		var req struct {
			TeamID string `json:"teamId"`
			Week   int    `json:"week"`
		}
		if err := decodeBody(r, &req); err != nil {
			badRequest(render, w, "%v", err)
			return
		}

		record, err := ctrl.SurvivorBuyback(r.Context(), id, req.TeamID, req.Week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, record)
	}
}
