package matching_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	matching "github.com/orderbooklabs/clob-engine/matching"
)

// clockStub lets a test move the engine's notion of "now" forward without
// sleeping for real.
type clockStub struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clockStub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clockStub) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func TestHousekeeperPrunesGoodForDayAtSessionClose(t *testing.T) {
	clock := &clockStub{now: time.Date(2024, 1, 1, 15, 59, 0, 0, time.UTC)}

	engine := matching.NewEngine(
		matching.WithClock(clock.Now),
		matching.WithSessionCloseHour(16),
		matching.WithHousekeeperPollInterval(10*time.Millisecond),
	)
	defer engine.Close()

	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodForDay, 100, 10))
	engine.AddOrder(matching.NewOrder(2, matching.SideBuy, matching.GoodTillCancel, 99, 5))
	require.Equal(t, 2, engine.Size())

	clock.set(time.Date(2024, 1, 1, 16, 0, 1, 0, time.UTC))

	require.Eventually(t, func() bool {
		return engine.Size() == 1
	}, time.Second, 10*time.Millisecond)

	bids, _ := engine.GetOrderInfos()
	require.Equal(t, []matching.LevelInfo{{Price: 99, Quantity: 5}}, bids)
}

func TestCloseStopsHousekeeperPromptly(t *testing.T) {
	engine := matching.NewEngine()

	done := make(chan struct{})
	go func() {
		engine.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return promptly")
	}
}
