package statsfeed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mww/league_engine/model"
)

const DefaultURL = "https://api.statsfeed.example.com"

// Client fetches raw weekly results from the upstream stats provider.
type Client interface {
	LoadStats(sport model.Sport, year string, week int) ([]model.StatLine, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (Client, error) {
	if url == "" {
		url = DefaultURL
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func (c *client) LoadStats(sport model.Sport, year string, week int) ([]model.StatLine, error) {
	var path string
	switch sport {
	case model.SPORT_GOLF:
		path = fmt.Sprintf("%s/v1/golf/%s/events/%d/results", c.url, year, week)
	case model.SPORT_NFL:
		path = fmt.Sprintf("%s/v1/nfl/%s/weeks/%d/stats", c.url, year, week)
	default:
		return nil, fmt.Errorf("%s is not a supported sport", sport)
	}

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	switch sport {
	case model.SPORT_GOLF:
		var parsed []golfResult
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("error parsing golf results: %w", err)
		}
		lines := make([]model.StatLine, 0, len(parsed))
		for _, r := range parsed {
			lines = append(lines, *r.toStatLine(week))
		}
		return lines, nil
	default:
		var parsed []nflResult
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("error parsing nfl stats: %w", err)
		}
		lines := make([]model.StatLine, 0, len(parsed))
		for _, r := range parsed {
			lines = append(lines, *r.toStatLine(week))
		}
		return lines, nil
	}
}
