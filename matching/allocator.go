package matching

import (
	"sync"

	"github.com/orderbooklabs/clob-engine/types/avl"
	"github.com/orderbooklabs/clob-engine/types/list"
)

// allocator pools the per-level AVL nodes and per-order queue elements
// that the book otherwise allocates and discards on every level/order
// lifecycle event. A busy book opens and closes price levels constantly
// as the ladder's edge moves, so reusing their nodes avoids handing the
// garbage collector a steady stream of small, short-lived objects.
type allocator struct {
	levelNodes    sync.Pool // *avl.Node[Price, *PriceLevel]
	queueElements sync.Pool // *list.Element[*Order]
	orders        sync.Pool // *Order
}

func newAllocator() *allocator {
	a := &allocator{}
	a.levelNodes = sync.Pool{New: func() any {
		return new(avl.Node[Price, *PriceLevel])
	}}
	a.queueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	return a
}

// getOrder returns a pooled Order populated with the given fields,
// avoiding a fresh heap allocation on every admission in a busy book.
func (a *allocator) getOrder(id OrderID, side Side, orderType OrderType, price Price, quantity Quantity) *Order {
	o := a.orders.Get().(*Order)
	o.id = id
	o.side = side
	o.orderType = orderType
	o.price = price
	o.initialQuantity = quantity
	o.remainingQuantity = quantity
	o.priceLevel = nil
	o.queued = nil
	return o
}

// putOrder returns order to the pool once it has left the book for good
// (fully filled or cancelled). Rejected orders never reach the pool.
func (a *allocator) putOrder(order *Order) {
	*order = Order{}
	a.orders.Put(order)
}
