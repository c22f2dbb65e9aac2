package matching

import "math"

// addOrder is the unlocked admission path shared by AddOrder and
// ModifyOrder's re-add. template supplies the requested id/side/type/
// price/quantity; the resting Order actually placed on the book is a
// pooled instance, not template itself. Caller must hold e.mu.
func (e *Engine) addOrder(template *Order) []Trade {
	id, side, orderType := template.id, template.side, template.orderType
	price, quantity := template.price, template.initialQuantity

	if _, duplicate := e.book.order(id); duplicate {
		e.handler.OnOrderRejected(template, ErrOrderDuplicate)
		return nil
	}

	switch orderType {
	case FillAndKill:
		if !e.canMatch(side, price) {
			e.handler.OnOrderRejected(template, ErrFillAndKillRejected)
			return nil
		}
	case FillOrKill:
		if !e.canFullyFill(side, price, quantity) {
			e.handler.OnOrderRejected(template, ErrFillOrKillRejected)
			return nil
		}
	}

	order := e.book.alloc.getOrder(id, side, orderType, price, quantity)
	if orderType == Market {
		order.toGoodTillCancel(marketSentinelPrice(side))
	}

	e.book.insert(order)
	e.handler.OnOrderAdded(order)

	trades := e.match()

	if (orderType == FillAndKill || orderType == Market) && !order.IsFilled() {
		e.book.remove(order)
		e.handler.OnOrderCancelled(order)
		e.book.alloc.putOrder(order)
	}

	return trades
}

// marketSentinelPrice returns a limit price guaranteed to cross every
// resting level on the opposite side, per the admission-time rewrite
// policy for Market orders: highest possible price for a buy, lowest
// possible for a sell.
func marketSentinelPrice(side Side) Price {
	if side == SideBuy {
		return math.MaxInt32
	}
	return math.MinInt32
}

// canMatch reports whether the opposing best level exists and crosses
// the given side/price.
func (e *Engine) canMatch(side Side, price Price) bool {
	if side == SideBuy {
		ask := e.book.bestAsk()
		return ask != nil && ask.Price() <= price
	}
	bid := e.book.bestBid()
	return bid != nil && bid.Price() >= price
}

// canFullyFill reports whether quantity can be completely matched against
// the opposing ladder at prices acceptable to side/price. It must walk
// the ordered ladder in best-first order to visit prices in priority
// order, since the hash-keyed aggregates map carries no ordering of its
// own; once a price is known, though, the total resting there comes from
// the aggregates map rather than the PriceLevel, so the map is this
// lookup's actual source of truth, not just a write-only mirror.
func (e *Engine) canFullyFill(side Side, price Price, quantity Quantity) bool {
	opposingSide := side.Opposite()
	opposite := e.book.ladder(opposingSide)

	fully := false
	opposite.IterateInOrder(func(level *PriceLevel) bool {
		if side == SideBuy && level.Price() > price {
			return true // stop: beyond the limit
		}
		if side == SideSell && level.Price() < price {
			return true // stop: beyond the limit
		}
		available := e.book.aggregateQuantity(opposingSide, level.Price())
		if available >= quantity {
			fully = true
			return true
		}
		quantity -= available
		return false
	})
	return fully
}

// match repeatedly crosses the best bid against the best ask while the
// book remains crossed, producing trades in price-time priority.
func (e *Engine) match() []Trade {
	var trades []Trade

	for {
		bidLevel, askLevel := e.book.bestBid(), e.book.bestAsk()
		if bidLevel == nil || askLevel == nil || bidLevel.Price() < askLevel.Price() {
			break
		}

		bid, ask := bidLevel.Front(), askLevel.Front()

		quantity := bid.remainingQuantity
		if ask.remainingQuantity < quantity {
			quantity = ask.remainingQuantity
		}

		e.book.matchFill(bid, quantity)
		e.book.matchFill(ask, quantity)

		trade := Trade{
			Bid: TradeInfo{OrderID: bid.id, Price: bid.price, Quantity: quantity},
			Ask: TradeInfo{OrderID: ask.id, Price: ask.price, Quantity: quantity},
		}
		trades = append(trades, trade)
		e.handler.OnTrade(trade)

		if bid.IsFilled() {
			e.book.popFilled(bid)
			e.book.alloc.putOrder(bid)
		}
		if ask.IsFilled() {
			e.book.popFilled(ask)
			e.book.alloc.putOrder(ask)
		}
	}

	return trades
}
