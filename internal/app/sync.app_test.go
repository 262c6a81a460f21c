package app

import (
	"context"
	"testing"

	"nestegg/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestNetPositionsFromOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("buys accumulate and sells net down", func(t *testing.T) {
		orders := []repository.Trading212HistoricalOrder{
			newFilledOrder("VWRP_EQ", "BUY", 10, 85, 850),
			newFilledOrder("VWRP_EQ", "BUY", 5, 90, 450),
			newFilledOrder("VWRP_EQ", "SELL", 5, 95, 475),
		}

		positions := netPositionsFromOrders(ctx, orders)

		require.Len(t, positions, 1)
		require.Equal(t, "VWRP_EQ", positions[0].Ticker)
		require.InDelta(t, 10.0, positions[0].TotalQuantity, 1e-9)
		require.InDelta(t, 825.0, positions[0].TotalInvested, 1e-9)
		require.Equal(t, 3, positions[0].OrderCount)
	})

	t.Run("unfilled orders are ignored", func(t *testing.T) {
		orders := []repository.Trading212HistoricalOrder{
			{Ticker: "AAPL_US_EQ", Type: "BUY", Status: "CANCELLED", FilledValue: 1000, FillPrice: 100},
			{Ticker: "AAPL_US_EQ", Type: "BUY", Status: "PENDING", FilledValue: 1000, FillPrice: 100},
		}

		positions := netPositionsFromOrders(ctx, orders)
		require.Empty(t, positions)
	})

	t.Run("tickers netting to zero or negative are dropped", func(t *testing.T) {
		orders := []repository.Trading212HistoricalOrder{
			newFilledOrder("SOLD_EQ", "BUY", 10, 50, 500),
			newFilledOrder("SOLD_EQ", "SELL", 10, 60, 600),
			newFilledOrder("GHOST_EQ", "SELL", 4, 25, 100),
			newFilledOrder("KEPT_EQ", "BUY", 2, 100, 200),
		}

		positions := netPositionsFromOrders(ctx, orders)

		require.Len(t, positions, 1)
		require.Equal(t, "KEPT_EQ", positions[0].Ticker)
	})

	t.Run("quantity derives from filled value over fill price", func(t *testing.T) {
		// fractional fill: 300 filled at 85.71 a share
		orders := []repository.Trading212HistoricalOrder{
			newFilledOrder("FRAC_EQ", "BUY", 0, 85.71, 300),
		}

		positions := netPositionsFromOrders(ctx, orders)

		require.Len(t, positions, 1)
		require.InDelta(t, 300/85.71, positions[0].TotalQuantity, 1e-9)
	})

	t.Run("output order follows first appearance, not map order", func(t *testing.T) {
		orders := []repository.Trading212HistoricalOrder{
			newFilledOrder("ZZZ_EQ", "BUY", 1, 10, 10),
			newFilledOrder("AAA_EQ", "BUY", 1, 10, 10),
			newFilledOrder("MMM_EQ", "BUY", 1, 10, 10),
		}

		positions := netPositionsFromOrders(ctx, orders)

		require.Len(t, positions, 3)
		require.Equal(t, "ZZZ_EQ", positions[0].Ticker)
		require.Equal(t, "AAA_EQ", positions[1].Ticker)
		require.Equal(t, "MMM_EQ", positions[2].Ticker)
	})
}

func TestIsBuyOrder(t *testing.T) {
	tests := []struct {
		name     string
		fillType string
		apiType  string
		want     bool
	}{
		{"fill type buy", "BUY", "", true},
		{"fill type otc", "OTC", "", true},
		{"fill type market", "MARKET", "", true},
		{"order type buy", "", "BUY", true},
		{"order type market", "", "MARKET", true},
		{"sell", "SELL", "SELL", false},
		{"dividend", "", "DIVIDEND", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := repository.Trading212HistoricalOrder{FillType: tc.fillType, Type: tc.apiType}
			require.Equal(t, tc.want, isBuyOrder(order))
		})
	}
}

func TestInstrumentDetails(t *testing.T) {
	instruments := map[string]repository.Trading212Instrument{
		"VWRP_EQ": {
			Ticker:       "VWRP_EQ",
			Name:         "Vanguard FTSE All-World UCITS ETF",
			CurrencyCode: "GBX",
		},
	}

	t.Run("known instrument supplies name and currency", func(t *testing.T) {
		name, currency := instrumentDetails("VWRP_EQ", instruments)
		require.Equal(t, "Vanguard FTSE All-World UCITS ETF", name)
		require.Equal(t, "GBX", currency)
	})

	t.Run("unknown instrument falls back to ticker and usd", func(t *testing.T) {
		name, currency := instrumentDetails("MYSTERY_EQ", instruments)
		require.Equal(t, "MYSTERY_EQ", name)
		require.Equal(t, "USD", currency)
	})
}

func TestMapOrderTypeAndStatus(t *testing.T) {
	require.Equal(t, "BUY", mapOrderType("BUY"))
	require.Equal(t, "DIVIDEND_REINVESTMENT", mapOrderType("DIVIDEND_REINVESTMENT"))
	require.Equal(t, "OTHER", mapOrderType("LIMIT_STOP"))

	require.Equal(t, "FILLED", mapOrderStatus("FILLED"))
	require.Equal(t, "OTHER", mapOrderStatus("EXPIRED"))
}

func newFilledOrder(ticker, orderType string, quantity, fillPrice, filledValue float64) repository.Trading212HistoricalOrder {
	return repository.Trading212HistoricalOrder{
		Ticker:         ticker,
		Type:           orderType,
		FillType:       orderType,
		Status:         "FILLED",
		FilledQuantity: quantity,
		FillPrice:      fillPrice,
		FilledValue:    filledValue,
	}
}
