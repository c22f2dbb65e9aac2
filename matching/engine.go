package matching

import (
	"sync"
	"time"
)

// Engine is a single-instrument central limit order book. It is safe for
// concurrent use: every public method acquires an internal mutex for its
// entire duration, so the engine behaves as a monitor — mutations are
// strictly serialized and reads observe a consistent snapshot.
type Engine struct {
	mu   sync.Mutex
	book *orderBook

	handler Handler
	clock   func() time.Time

	sessionCloseHour        int
	housekeeperPollInterval time.Duration

	housekeeperDone   chan struct{}
	housekeeperCancel chan struct{}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithHandler installs a Handler to observe order and trade events. The
// default is NopHandler.
func WithHandler(h Handler) Option {
	return func(e *Engine) { e.handler = h }
}

// WithSessionCloseHour sets the local hour-of-day (0-23) at which the
// housekeeper cancels resting GoodForDay orders. The default is 16 (4pm).
func WithSessionCloseHour(hour int) Option {
	return func(e *Engine) { e.sessionCloseHour = hour }
}

// WithClock overrides the engine's time source, primarily for tests that
// need to control when the session boundary falls.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithHousekeeperPollInterval overrides how often the housekeeper wakes to
// re-check the session-close boundary against the engine's clock. The
// default is defaultHousekeeperPollInterval; tests driving the clock with
// WithClock typically shrink this so a simulated boundary crossing is
// observed promptly instead of waiting out a full real-time quantum.
func WithHousekeeperPollInterval(d time.Duration) Option {
	return func(e *Engine) { e.housekeeperPollInterval = d }
}

// NewEngine creates an Engine and starts its housekeeper goroutine.
// Callers must call Close when done to stop the housekeeper.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		book:                    newOrderBook(),
		handler:                 NopHandler{},
		clock:                   time.Now,
		sessionCloseHour:        defaultSessionCloseHour,
		housekeeperPollInterval: defaultHousekeeperPollInterval,
		housekeeperDone:         make(chan struct{}),
		housekeeperCancel:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	go e.runHousekeeper()
	return e
}

// Close signals the housekeeper to stop and waits for it to exit. No
// further operations should be issued against the engine afterwards.
func (e *Engine) Close() {
	close(e.housekeeperCancel)
	<-e.housekeeperDone
}

// AddOrder admits a new order, runs it through the crossing loop, and
// returns the trades produced. A duplicate order id is silently
// rejected (empty trades, no state change), as is a FillAndKill order
// with no matching liquidity or a FillOrKill order that cannot be filled
// in full.
func (e *Engine) AddOrder(order *Order) []Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addOrder(order)
}

// CancelOrder removes order_id from the book if present; it is a no-op
// if the id is absent.
func (e *Engine) CancelOrder(id OrderID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelOrder(id)
}

// ModifyOrder cancels the existing order_id (if present) and re-admits a
// new order under the same id and the original order's type, with the
// requested side, price, and quantity. This loses time priority. Returns
// the trades produced by the re-admission, or nil if order_id was absent.
func (e *Engine) ModifyOrder(id OrderID, side Side, price Price, quantity Quantity) []Trade {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.book.order(id)
	if !ok {
		return nil
	}
	orderType := existing.orderType
	e.cancelOrder(id)

	return e.addOrder(NewOrder(id, side, orderType, price, quantity))
}

// Size returns the number of resting orders in the book.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.size()
}

// GetOrderInfos returns a best-first snapshot of every non-empty level on
// both sides of the book.
func (e *Engine) GetOrderInfos() (bids, asks []LevelInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotLadder(&e.book.bids), snapshotLadder(&e.book.asks)
}

// cancelOrder is the internal, already-locked cancel path shared by
// CancelOrder, ModifyOrder, and the housekeeper's GFD sweep.
func (e *Engine) cancelOrder(id OrderID) {
	order, ok := e.book.order(id)
	if !ok {
		return
	}
	e.book.remove(order)
	e.handler.OnOrderCancelled(order)
	e.book.alloc.putOrder(order)
}
