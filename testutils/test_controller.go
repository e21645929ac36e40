package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController bundles the fakes a controller needs in tests.
type TestController struct {
	Clock     clock.Clock
	fakeStats *FakeStatsServer
}

func NewTestController(db *TestDB) *TestController {
	return &TestController{
		Clock:     db.Clock,
		fakeStats: NewFakeStatsServer(),
	}
}

func (c *TestController) Close() {
	c.fakeStats.Close()
}

func (c *TestController) StatsURL() string {
	return c.fakeStats.URL()
}
