package matching_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	matching "github.com/orderbooklabs/clob-engine/matching"
	mockmatching "github.com/orderbooklabs/clob-engine/matching/mocks"
)

func newTestEngine(t *testing.T, opts ...matching.Option) *matching.Engine {
	t.Helper()
	engine := matching.NewEngine(opts...)
	t.Cleanup(engine.Close)
	return engine
}

// Scenario 1: GTC rest-then-cross.
func TestAddOrderGTCRestThenCross(t *testing.T) {
	engine := newTestEngine(t)

	trades := engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 100, 10))
	require.Empty(t, trades)

	trades = engine.AddOrder(matching.NewOrder(2, matching.SideSell, matching.GoodTillCancel, 101, 10))
	require.Empty(t, trades)

	trades = engine.AddOrder(matching.NewOrder(3, matching.SideBuy, matching.GoodTillCancel, 101, 10))
	require.Len(t, trades, 1)
	require.Equal(t, matching.Trade{
		Bid: matching.TradeInfo{OrderID: 3, Price: 101, Quantity: 10},
		Ask: matching.TradeInfo{OrderID: 2, Price: 101, Quantity: 10},
	}, trades[0])

	require.Equal(t, 1, engine.Size())
	bids, asks := engine.GetOrderInfos()
	require.Equal(t, []matching.LevelInfo{{Price: 100, Quantity: 10}}, bids)
	require.Empty(t, asks)
}

// Scenario 2: FAK with no liquidity is rejected without resting.
func TestAddOrderFillAndKillNoLiquidity(t *testing.T) {
	engine := newTestEngine(t)

	trades := engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.FillAndKill, 100, 5))
	require.Empty(t, trades)
	require.Equal(t, 0, engine.Size())
	bids, asks := engine.GetOrderInfos()
	require.Empty(t, bids)
	require.Empty(t, asks)
}

// Scenario 3: FOK that can be fully filled executes against both resting levels.
func TestAddOrderFillOrKillHit(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideSell, matching.GoodTillCancel, 100, 4))
	engine.AddOrder(matching.NewOrder(2, matching.SideSell, matching.GoodTillCancel, 100, 6))

	trades := engine.AddOrder(matching.NewOrder(3, matching.SideBuy, matching.FillOrKill, 100, 10))
	require.Len(t, trades, 2)

	var total matching.Quantity
	for _, tr := range trades {
		total += tr.Quantity()
	}
	require.EqualValues(t, 10, total)

	require.Equal(t, 0, engine.Size())
}

// Scenario 4: FOK that cannot be fully filled is rejected entirely.
func TestAddOrderFillOrKillMiss(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideSell, matching.GoodTillCancel, 100, 4))
	trades := engine.AddOrder(matching.NewOrder(2, matching.SideBuy, matching.FillOrKill, 100, 10))
	require.Empty(t, trades)

	require.Equal(t, 1, engine.Size())
	bids, asks := engine.GetOrderInfos()
	require.Empty(t, bids)
	require.Equal(t, []matching.LevelInfo{{Price: 100, Quantity: 4}}, asks)
}

// Scenario 5: cancel removes a resting order.
func TestCancelOrder(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 100, 10))
	engine.CancelOrder(1)
	require.Equal(t, 0, engine.Size())
}

// Cancel idempotence: cancelling twice is the same as cancelling once.
func TestCancelOrderIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 100, 10))
	engine.CancelOrder(1)
	engine.CancelOrder(1)
	require.Equal(t, 0, engine.Size())
}

// Scenario 6: modify loses time priority.
func TestModifyOrderLosesTimePriority(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 100, 5))
	engine.AddOrder(matching.NewOrder(2, matching.SideBuy, matching.GoodTillCancel, 100, 5))

	trades := engine.ModifyOrder(1, matching.SideBuy, 100, 5)
	require.Empty(t, trades)

	trades = engine.AddOrder(matching.NewOrder(3, matching.SideSell, matching.GoodTillCancel, 100, 5))
	require.Len(t, trades, 1)
	require.EqualValues(t, 2, trades[0].Bid.OrderID)

	require.Equal(t, 1, engine.Size())
	bids, _ := engine.GetOrderInfos()
	require.Equal(t, []matching.LevelInfo{{Price: 100, Quantity: 5}}, bids)
}

// Scenario 7: Market order sweeps both resting ask levels.
func TestAddOrderMarketSweepsLevels(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideSell, matching.GoodTillCancel, 100, 4))
	engine.AddOrder(matching.NewOrder(2, matching.SideSell, matching.GoodTillCancel, 101, 6))

	trades := engine.AddOrder(matching.NewMarketOrder(3, matching.SideBuy, 10))
	require.Len(t, trades, 2)

	require.Equal(t, 0, engine.Size())
	bids, asks := engine.GetOrderInfos()
	require.Empty(t, bids)
	require.Empty(t, asks)
}

func TestAddOrderDuplicateIDRejected(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 100, 10))
	trades := engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.GoodTillCancel, 99, 3))
	require.Empty(t, trades)
	require.Equal(t, 1, engine.Size())

	bids, _ := engine.GetOrderInfos()
	require.Equal(t, []matching.LevelInfo{{Price: 100, Quantity: 10}}, bids)
}

func TestHandlerReceivesNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mockmatching.NewMockHandler(ctrl)

	handler.EXPECT().OnOrderAdded(gomock.Any()).Times(2)
	handler.EXPECT().OnTrade(gomock.Any()).Times(1)

	engine := newTestEngine(t, matching.WithHandler(handler))

	engine.AddOrder(matching.NewOrder(1, matching.SideSell, matching.GoodTillCancel, 100, 5))
	engine.AddOrder(matching.NewOrder(2, matching.SideBuy, matching.GoodTillCancel, 100, 5))
}

func TestHandlerNotifiedOnRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mockmatching.NewMockHandler(ctrl)

	handler.EXPECT().OnOrderRejected(gomock.Any(), matching.ErrFillAndKillRejected).Times(1)

	engine := newTestEngine(t, matching.WithHandler(handler))
	engine.AddOrder(matching.NewOrder(1, matching.SideBuy, matching.FillAndKill, 100, 5))
}
