package matching

import "time"

// runHousekeeper is the engine's background agent: it wakes at least
// once per housekeeperPollInterval (defaultHousekeeperPollInterval unless
// set through WithHousekeeperPollInterval), prunes GoodForDay orders once
// the configured session-close instant has passed, and exits as soon as
// Close signals shutdown — observed within one wait quantum regardless
// of how far off the next boundary is. Waking in bounded quanta rather
// than sleeping for the full gap to the boundary keeps the agent
// responsive to a clock supplied via WithClock moving the boundary
// sooner than a real-time sleep would have noticed.
func (e *Engine) runHousekeeper() {
	defer close(e.housekeeperDone)

	boundary := e.nextSessionClose()
	for {
		wait := boundary.Sub(e.clock()) + 100*time.Millisecond
		if wait < 0 {
			wait = 0
		}
		if wait > e.housekeeperPollInterval {
			wait = e.housekeeperPollInterval
		}

		timer := time.NewTimer(wait)
		select {
		case <-e.housekeeperCancel:
			timer.Stop()
			return
		case <-timer.C:
			if !boundary.After(e.clock()) {
				e.pruneGoodForDayOrders()
				boundary = e.nextSessionClose()
			}
		}
	}
}

// nextSessionClose returns the next instant, in the engine's clock's
// location, at which the trading session closes: today at the
// configured hour if that has not yet passed, otherwise tomorrow.
func (e *Engine) nextSessionClose() time.Time {
	now := e.clock()
	close := time.Date(now.Year(), now.Month(), now.Day(), e.sessionCloseHour, 0, 0, 0, now.Location())
	if !close.After(now) {
		close = close.Add(24 * time.Hour)
	}
	return close
}

// pruneGoodForDayOrders snapshots every resting GoodForDay order id under
// the lock, then cancels each through the normal internal path.
func (e *Engine) pruneGoodForDayOrders() {
	e.mu.Lock()
	defer e.mu.Unlock()

	var ids []OrderID
	e.book.orders.Scan(func(id OrderID, order *Order) bool {
		if order.orderType == GoodForDay {
			ids = append(ids, id)
		}
		return true
	})

	for _, id := range ids {
		e.cancelOrder(id)
	}
}
