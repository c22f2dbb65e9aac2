package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderFillReducesRemaining(t *testing.T) {
	order := NewOrder(1, SideBuy, GoodTillCancel, 100, 10)
	order.fill(4)
	require.EqualValues(t, 6, order.remainingQuantity)
	require.False(t, order.IsFilled())

	order.fill(6)
	require.True(t, order.IsFilled())
}

func TestOrderFillOverfillPanics(t *testing.T) {
	order := NewOrder(1, SideBuy, GoodTillCancel, 100, 10)
	require.Panics(t, func() {
		order.fill(11)
	})
}

func TestOrderToGoodTillCancelRewritesMarketOrder(t *testing.T) {
	order := NewMarketOrder(1, SideBuy, 10)
	order.toGoodTillCancel(12345)
	require.Equal(t, GoodTillCancel, order.orderType)
	require.EqualValues(t, 12345, order.price)
}

func TestOrderToGoodTillCancelPanicsOnNonMarket(t *testing.T) {
	order := NewOrder(1, SideBuy, GoodTillCancel, 100, 10)
	require.Panics(t, func() {
		order.toGoodTillCancel(1)
	})
}
