package matching

// levelAction describes how a level aggregate update was triggered, so
// that the aggregates map and the ladder can be kept in lockstep without
// duplicating the bookkeeping logic at every call site.
type levelAction uint8

const (
	// levelActionAdd records a brand new order resting at a price.
	levelActionAdd levelAction = iota
	// levelActionMatch records a partial fill that leaves the order resting.
	levelActionMatch
	// levelActionRemove records an order leaving the level entirely,
	// whether by full fill or by cancellation.
	levelActionRemove
)

// levelAggregate is the O(1)-lookup counterpart to a ladder level: the
// same {total remaining quantity, resting order count} a PriceLevel
// already tracks, but reachable by a hash lookup on price rather than a
// tree descent. canFullyFill (engine_matching.go) still walks the
// ordered ladder to decide which prices to visit and in what order, since
// a hash map carries no ordering of its own, but once a price is chosen
// it reads the available quantity at that price from this map, not from
// the PriceLevel — the map is a real dependency of that path, not a
// write-only shadow of the ladder.
type levelAggregate struct {
	totalQuantity Quantity
	count         int
}

// apply updates the aggregate for one of the three level actions. quantity
// is the amount added (Add), matched (Match), or remaining on the removed
// order (Remove).
func (a *levelAggregate) apply(action levelAction, quantity Quantity) {
	switch action {
	case levelActionAdd:
		a.totalQuantity += quantity
		a.count++
	case levelActionMatch:
		a.totalQuantity -= quantity
	case levelActionRemove:
		a.totalQuantity -= quantity
		a.count--
	}
}
