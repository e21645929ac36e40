package mockstatsfeed

import (
	"github.com/mww/league_engine/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadStats(sport model.Sport, year string, week int) ([]model.StatLine, error) {
	args := c.Called(sport, year, week)

	var res []model.StatLine
	if args.Get(0) != nil {
		res = args.Get(0).([]model.StatLine)
	}

	return res, args.Error(1)
}
