package harness

import "github.com/orderbooklabs/clob-engine/matching"

// Observed is the book state produced by replaying a Script, in the same
// shape as its terminal Result so the two can be compared directly.
type Observed struct {
	Size      int
	BidLevels int
	AskLevels int
}

// Matches reports whether an observed outcome satisfies the script's
// expected terminal result.
func (o Observed) Matches(want Result) bool {
	return o == Observed(want)
}

// Run replays every command in the script against engine, in order, and
// returns the resulting book state for comparison against script.Result.
// It does not start or stop the engine; callers own its lifecycle.
func Run(engine *matching.Engine, script *Script) Observed {
	for _, cmd := range script.Commands {
		switch cmd.Kind {
		case CommandAdd:
			engine.AddOrder(matching.NewOrder(cmd.ID, cmd.Side, cmd.Type, cmd.Price, cmd.Quantity))
		case CommandModify:
			engine.ModifyOrder(cmd.ID, cmd.Side, cmd.Price, cmd.Quantity)
		case CommandCancel:
			engine.CancelOrder(cmd.ID)
		}
	}

	bids, asks := engine.GetOrderInfos()
	return Observed{
		Size:      engine.Size(),
		BidLevels: len(bids),
		AskLevels: len(asks),
	}
}
