package matching

import (
	"fmt"

	"github.com/tidwall/hashmap"

	"github.com/orderbooklabs/clob-engine/types/avl"
)

// orderBook holds the two price-ordered ladders, the order index, and the
// level aggregates for a single instrument. It is not itself
// thread-safe: every mutating method assumes its caller (the Engine)
// already holds the exclusive lock for the duration of the call.
type orderBook struct {
	alloc *allocator

	bids avl.Tree[Price, *PriceLevel] // best-first: descending price
	asks avl.Tree[Price, *PriceLevel] // best-first: ascending price

	orders *hashmap.Map[OrderID, *Order]

	// bidAggregates and askAggregates are each keyed by price, one map
	// per side. They must stay separate: while the book is crossed
	// mid-match, an aggressor resting briefly on one side and a passive
	// order resting on the other can share the same price, and a single
	// shared map would have one side's removal delete the other side's
	// entry out from under it.
	bidAggregates *hashmap.Map[Price, *levelAggregate]
	askAggregates *hashmap.Map[Price, *levelAggregate]
}

func newOrderBook() *orderBook {
	alloc := newAllocator()
	descending := func(a, b Price) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	ascending := func(a, b Price) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return &orderBook{
		alloc:         alloc,
		bids:          avl.NewTreePooled[Price, *PriceLevel](descending, &alloc.levelNodes),
		asks:          avl.NewTreePooled[Price, *PriceLevel](ascending, &alloc.levelNodes),
		orders:        hashmap.New[OrderID, *Order](defaultReservedOrderSlots),
		bidAggregates: hashmap.New[Price, *levelAggregate](defaultReservedLevelSlots),
		askAggregates: hashmap.New[Price, *levelAggregate](defaultReservedLevelSlots),
	}
}

// aggregatesFor returns the aggregates map belonging to side.
func (ob *orderBook) aggregatesFor(side Side) *hashmap.Map[Price, *levelAggregate] {
	if side == SideBuy {
		return ob.bidAggregates
	}
	return ob.askAggregates
}

// ladder returns the tree that holds the given side's resting levels.
func (ob *orderBook) ladder(side Side) *avl.Tree[Price, *PriceLevel] {
	if side == SideBuy {
		return &ob.bids
	}
	return &ob.asks
}

// size returns the number of resting orders across both ladders.
func (ob *orderBook) size() int {
	return ob.orders.Len()
}

func (ob *orderBook) order(id OrderID) (*Order, bool) {
	return ob.orders.Get(id)
}

// bestBid returns the best resting bid level, or nil.
func (ob *orderBook) bestBid() *PriceLevel {
	node := ob.bids.MostLeft()
	if node == nil {
		return nil
	}
	return node.Value()
}

// bestAsk returns the best resting ask level, or nil.
func (ob *orderBook) bestAsk() *PriceLevel {
	node := ob.asks.MostLeft()
	if node == nil {
		return nil
	}
	return node.Value()
}

// insert places order at the tail of its side's queue at order.price,
// creating the level if needed, and updates the index and aggregates.
func (ob *orderBook) insert(order *Order) {
	tree := ob.ladder(order.side)

	node := tree.Find(order.price)
	if node == nil {
		level := newPriceLevel(order.price, &ob.alloc.queueElements)
		var err error
		node, err = tree.Add(order.price, level)
		if err != nil {
			panic(err)
		}
	}

	level := node.Value()
	level.enqueue(order)
	order.priceLevel = node

	ob.orders.Set(order.id, order)
	ob.levelAggregateFor(order.side, order.price).apply(levelActionAdd, order.remainingQuantity)
}

// remove takes order off the book entirely: out of its level's queue, out
// of the index, and out of the aggregates; deletes the level itself if it
// is now empty.
func (ob *orderBook) remove(order *Order) {
	level := order.priceLevel.Value()
	level.dequeue(order)
	ob.levelAggregateFor(order.side, order.price).apply(levelActionRemove, order.remainingQuantity)

	if level.Empty() {
		tree := ob.ladder(order.side)
		_, _ = tree.Remove(order.price)
		ob.aggregatesFor(order.side).Delete(order.price)
	}

	order.priceLevel = nil
	ob.orders.Delete(order.id)
}

// matchFill records that quantity of order's remaining amount was just
// consumed by a trade, without removing it from the index. If the order
// becomes fully filled, the caller is responsible for popping it off the
// queue with popFilled.
func (ob *orderBook) matchFill(order *Order, quantity Quantity) {
	order.fill(quantity)
	level := order.priceLevel.Value()
	level.reduce(quantity)
	ob.levelAggregateFor(order.side, order.price).apply(levelActionMatch, quantity)
}

// popFilled removes a fully-filled order's head-of-queue element from its
// level and from the index, deleting the level if it becomes empty. It
// does not touch the aggregate's totalQuantity (already reduced by
// matchFill); it only drops the count.
func (ob *orderBook) popFilled(order *Order) {
	level := order.priceLevel.Value()
	_, _ = level.queue.Remove(order.queued)
	order.queued = nil
	ob.levelAggregateFor(order.side, order.price).apply(levelActionRemove, 0)

	if level.Empty() {
		tree := ob.ladder(order.side)
		_, _ = tree.Remove(order.price)
		ob.aggregatesFor(order.side).Delete(order.price)
	}

	order.priceLevel = nil
	ob.orders.Delete(order.id)
}

// levelAggregateFor returns the aggregate for side/price, creating an
// empty one if this is the first order to touch that side's level.
func (ob *orderBook) levelAggregateFor(side Side, price Price) *levelAggregate {
	aggregates := ob.aggregatesFor(side)
	agg, ok := aggregates.Get(price)
	if !ok {
		agg = &levelAggregate{}
		aggregates.Set(price, agg)
	}
	return agg
}

// aggregateQuantity returns the O(1) total remaining quantity resting at
// side/price per the aggregates map, or 0 if nothing rests there. This is
// the lookup canFullyFill uses once it has located a price in ladder
// order; the map itself cannot provide that order, only the total once a
// price is known.
func (ob *orderBook) aggregateQuantity(side Side, price Price) Quantity {
	agg, ok := ob.aggregatesFor(side).Get(price)
	if !ok {
		return 0
	}
	return agg.totalQuantity
}

// checkInvariants confirms every resting level's aggregate entry agrees
// with its PriceLevel's own order count and total quantity, and that
// neither aggregates map carries an entry for a price absent from its
// ladder. Exercised by the aggregate cross-check tests; not called from
// any production path.
func (ob *orderBook) checkInvariants() error {
	if err := checkSideInvariants(SideBuy, &ob.bids, ob.bidAggregates); err != nil {
		return err
	}
	return checkSideInvariants(SideSell, &ob.asks, ob.askAggregates)
}

func checkSideInvariants(side Side, tree *avl.Tree[Price, *PriceLevel], aggregates *hashmap.Map[Price, *levelAggregate]) error {
	levels := 0
	var err error
	tree.IterateInOrder(func(level *PriceLevel) bool {
		agg, ok := aggregates.Get(level.Price())
		if !ok {
			err = fmt.Errorf("side %v price %d: resting level has no aggregate entry", side, level.Price())
			return true
		}
		if agg.count != level.OrderCount() {
			err = fmt.Errorf("side %v price %d: aggregate count %d != level order count %d", side, level.Price(), agg.count, level.OrderCount())
			return true
		}
		if agg.totalQuantity != level.TotalQuantity() {
			err = fmt.Errorf("side %v price %d: aggregate total %d != level total %d", side, level.Price(), agg.totalQuantity, level.TotalQuantity())
			return true
		}
		levels++
		return false
	})
	if err != nil {
		return err
	}
	if aggregates.Len() != levels {
		return fmt.Errorf("side %v: aggregates map has %d entries, ladder has %d levels", side, aggregates.Len(), levels)
	}
	return nil
}

// LevelInfo is a point-in-time snapshot of one price level: its price and
// the total remaining quantity resting there.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// snapshot walks a ladder best-first and returns a LevelInfo per
// non-empty level. It reads the ladder's own queues directly rather than
// the aggregates map, since the snapshot is meant to be authoritative and
// the aggregates map is a hot-path optimization, not a second source of
// truth.
func snapshotLadder(tree *avl.Tree[Price, *PriceLevel]) []LevelInfo {
	var infos []LevelInfo
	tree.IterateInOrder(func(level *PriceLevel) bool {
		if !level.Empty() {
			infos = append(infos, LevelInfo{Price: level.Price(), Quantity: level.TotalQuantity()})
		}
		return false
	})
	return infos
}
