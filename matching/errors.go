package matching

import "errors"

// Errors used by the package.
var (
	ErrOrderDuplicate       = errors.New("order is duplicated")
	ErrOrderNotFound        = errors.New("order is not found")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")
	ErrFillOrKillRejected   = errors.New("fill-or-kill order cannot be filled in full")
	ErrFillAndKillRejected  = errors.New("fill-and-kill order has no matching liquidity")
	ErrEngineClosed         = errors.New("engine is closed")
)
