package matching

import (
	"fmt"

	"github.com/orderbooklabs/clob-engine/types/avl"
	"github.com/orderbooklabs/clob-engine/types/list"
)

// Price is expressed in the smallest unit the instrument trades in; there
// is no implied decimal scaling.
type Price int32

// Quantity is a count of whole units of the instrument.
type Quantity uint32

// OrderID uniquely identifies a live or historical order within an engine.
type OrderID uint64

// Order contains everything the engine needs to track a single order
// from acceptance to its final fill, cancel, or rejection.
type Order struct {
	id        OrderID
	side      Side
	orderType OrderType

	price             Price
	initialQuantity   Quantity
	remainingQuantity Quantity

	// priceLevel points at the AVL node holding the price level this
	// order rests on; nil until the order is placed on the book.
	priceLevel *avl.Node[Price, *PriceLevel]

	// queued points at this order's element within its price level's
	// FIFO queue; nil until the order is placed on the book.
	queued *list.Element[*Order]
}

// NewOrder constructs a new limit-priced order in its initial, unfilled state.
func NewOrder(id OrderID, side Side, orderType OrderType, price Price, quantity Quantity) *Order {
	return &Order{
		id:                id,
		side:              side,
		orderType:         orderType,
		price:             price,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

// NewMarketOrder constructs a Market order, which ignores its own price
// and instead sweeps the best available prices on the opposite side.
func NewMarketOrder(id OrderID, side Side, quantity Quantity) *Order {
	return NewOrder(id, side, Market, 0, quantity)
}

// ID returns the order's identifier.
func (o *Order) ID() OrderID { return o.id }

// Side returns the order's trading side.
func (o *Order) Side() Side { return o.side }

// Type returns the order's lifetime/type.
func (o *Order) Type() OrderType { return o.orderType }

// Price returns the order's limit price. An order built by NewMarketOrder
// reports 0; the engine places its own pooled copy of a Market order on
// the book at a sentinel price, which this order does not see.
func (o *Order) Price() Price { return o.price }

// InitialQuantity returns the order's quantity as originally submitted.
func (o *Order) InitialQuantity() Quantity { return o.initialQuantity }

// RemainingQuantity returns the quantity still unfilled.
func (o *Order) RemainingQuantity() Quantity { return o.remainingQuantity }

// FilledQuantity returns the quantity executed so far.
func (o *Order) FilledQuantity() Quantity {
	return o.initialQuantity - o.remainingQuantity
}

// IsFilled returns true once no quantity remains.
func (o *Order) IsFilled() bool { return o.remainingQuantity == 0 }

// fill reduces the order's remaining quantity by the given amount. It
// panics if asked to fill more than remains, since that can only happen
// from a bug in the matching loop's own accounting, never from outside input.
func (o *Order) fill(quantity Quantity) {
	if quantity > o.remainingQuantity {
		panic(fmt.Sprintf("order %d cannot be filled for more than its remaining quantity", o.id))
	}
	o.remainingQuantity -= quantity
}

// toGoodTillCancel rewrites a Market order into a GoodTillCancel order
// pegged at price. The engine calls it at admission, before matching, with
// a sentinel price that crosses every opposing level. Only Market orders
// may be rewritten this way.
func (o *Order) toGoodTillCancel(price Price) {
	if o.orderType != Market {
		panic(fmt.Sprintf("order %d cannot have its price adjusted, only market orders can", o.id))
	}
	o.price = price
	o.orderType = GoodTillCancel
}
