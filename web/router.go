package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/league_engine/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", listLeaguesHandler(ctrl, render))
		r.Post("/", addLeagueHandler(ctrl, render))

		r.Route("/{leagueID:\\d+}", func(r chi.Router) {
			r.Get("/", getLeagueHandler(ctrl, render))
			r.Delete("/", archiveLeagueHandler(ctrl, render))
			r.Put("/settings", updateSettingsHandler(ctrl, render))

			r.Get("/schedule", getScheduleHandler(ctrl, render))
			r.Post("/schedule", generateScheduleHandler(ctrl, render))
			r.Get("/results", getResultsHandler(ctrl, render))
			r.Post("/results", recordResultsHandler(ctrl, render))

			r.Post("/stats/sync", syncStatsHandler(ctrl, render))
			r.Post("/scores/preview", previewScoreHandler(ctrl, render))
			r.Get("/scores", scoreWeekHandler(ctrl, render))

			r.Get("/standings", standingsHandler(ctrl, render))

			r.Route("/bracket", func(r chi.Router) {
				r.Get("/", getBracketHandler(ctrl, render))
				r.Post("/", generateBracketHandler(ctrl, render))
				r.Post("/results", playoffResultHandler(ctrl, render))
				r.Post("/advance", advanceRoundHandler(ctrl, render))
				r.Post("/slots", submitSlotsHandler(ctrl, render))
			})

			r.Post("/picks", lockPickHandler(ctrl, render))
			r.Post("/buybacks", buybackHandler(ctrl, render))
		})
	})

	return r
}
