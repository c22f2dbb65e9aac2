package matching

// TradeInfo describes one side of a trade: which order it was and how
// much of that order's quantity this particular trade consumed.
type TradeInfo struct {
	OrderID  OrderID
	Price    Price
	Quantity Quantity
}

// Trade records a single match between the head of the bid queue and the
// head of the ask queue at the moment the book crossed. Each half
// carries its own order's displayed price: since the two queues may
// belong to orders admitted with different limit prices, the bid and ask
// halves of one trade can legitimately disagree on price.
type Trade struct {
	Bid TradeInfo
	Ask TradeInfo
}

// Quantity returns the quantity exchanged by the trade (equal on both sides).
func (t Trade) Quantity() Quantity { return t.Bid.Quantity }
