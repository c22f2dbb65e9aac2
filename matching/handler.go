package matching

//go:generate mockgen -destination=mocks/handler_mock.go -package=mockmatching . Handler

// Handler observes engine activity as it happens. Implementations are
// called while the engine's internal lock is held, so a Handler must not
// call back into the Engine and should keep its work short.
type Handler interface {
	// OnOrderAdded is called once an order has passed admission checks
	// and been placed on the book, before it is matched; a FillAndKill or
	// Market remainder is later reported through OnOrderCancelled.
	OnOrderAdded(order *Order)

	// OnOrderRejected is called when an order is refused outright, e.g.
	// a FillOrKill order that cannot be filled in full, or a duplicate id.
	OnOrderRejected(order *Order, reason error)

	// OnOrderCancelled is called when an order is removed from the book
	// without being fully filled, whether by explicit cancellation, a
	// FillAndKill remainder, or housekeeper expiry.
	OnOrderCancelled(order *Order)

	// OnTrade is called once for every trade produced by a match.
	OnTrade(trade Trade)
}

// NopHandler is a Handler that does nothing. It is the Engine's default
// so that callers who don't care about notifications don't pay for them.
type NopHandler struct{}

func (NopHandler) OnOrderAdded(*Order)           {}
func (NopHandler) OnOrderRejected(*Order, error) {}
func (NopHandler) OnOrderCancelled(*Order)       {}
func (NopHandler) OnTrade(Trade)                 {}
