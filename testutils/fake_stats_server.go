package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed statsdata
var statsdata embed.FS

type FakeStatsServer struct {
	s *httptest.Server
}

func NewFakeStatsServer() *FakeStatsServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/golf/{year}/events/{week}/results", golfResultsHandler)
		r.Get("/nfl/{year}/weeks/{week}/stats", nflStatsHandler)
	})

	return &FakeStatsServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeStatsServer) Close() {
	f.s.Close()
}

func (f *FakeStatsServer) URL() string {
	return f.s.URL
}

func golfResultsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "week") == "1" {
		serveStatsFile(w, "golf_results.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func nflStatsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "week") == "1" {
		serveStatsFile(w, "nfl_stats.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func serveStatsFile(w http.ResponseWriter, name string) {
	b, err := statsdata.ReadFile(fmt.Sprintf("statsdata/%s", name))
	if err != nil {
		log.Printf("error reading statsdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
