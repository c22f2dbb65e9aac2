package matching

import "time"

const (
	// defaultReservedOrderSlots specifies the initial size of the hashmap
	// array storing orders by order id.
	defaultReservedOrderSlots = 1024

	// defaultReservedLevelSlots specifies the initial size of the hashmap
	// array storing level aggregates by price.
	defaultReservedLevelSlots = 256

	// defaultSessionCloseHour is the hour of day (0-23, local to the
	// engine's clock) at which the housekeeper cancels resting
	// GoodForDay orders.
	defaultSessionCloseHour = 16

	// defaultHousekeeperPollInterval bounds how long the housekeeper
	// sleeps between checks for the next session close, so a clock
	// change or engine shutdown is noticed promptly.
	defaultHousekeeperPollInterval = time.Minute
)
