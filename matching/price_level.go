package matching

import (
	"sync"

	"github.com/orderbooklabs/clob-engine/types/list"
)

// PriceLevel holds every resting order at a single price, in strict
// arrival order, plus the running totals needed to answer "how much
// quantity is available at this price" in O(1) rather than walking
// the queue.
type PriceLevel struct {
	price         Price
	totalQuantity Quantity
	queue         *list.List[*Order]
}

// newPriceLevel creates an empty level at the given price, whose queue
// draws its elements from pool.
func newPriceLevel(price Price, pool *sync.Pool) *PriceLevel {
	return &PriceLevel{
		price: price,
		queue: list.NewPooled[*Order](pool),
	}
}

// Price returns the level's price.
func (pl *PriceLevel) Price() Price { return pl.price }

// TotalQuantity returns the sum of remaining quantity across every order
// resting at this level.
func (pl *PriceLevel) TotalQuantity() Quantity { return pl.totalQuantity }

// OrderCount returns how many orders rest at this level.
func (pl *PriceLevel) OrderCount() int { return pl.queue.Len() }

// Front returns the oldest order resting at this level, or nil if none.
func (pl *PriceLevel) Front() *Order {
	e := pl.queue.Front()
	if e == nil {
		return nil
	}
	return e.Value
}

// enqueue appends order to the back of the level's FIFO queue and folds
// its remaining quantity into the level total.
func (pl *PriceLevel) enqueue(order *Order) {
	order.queued = pl.queue.PushBack(order)
	pl.totalQuantity += order.remainingQuantity
}

// dequeue removes order from the level's queue and unwinds its
// contribution to the level total. Callers are responsible for removing
// the level itself once it becomes empty.
func (pl *PriceLevel) dequeue(order *Order) {
	_, _ = pl.queue.Remove(order.queued)
	order.queued = nil
	pl.totalQuantity -= order.remainingQuantity
}

// reduce records that quantity of order's remaining amount was just
// consumed by a match, keeping the level total in sync without removing
// the order from the queue.
func (pl *PriceLevel) reduce(quantity Quantity) {
	pl.totalQuantity -= quantity
}

// Empty returns true if no orders rest at this level.
func (pl *PriceLevel) Empty() bool { return pl.queue.Len() == 0 }
