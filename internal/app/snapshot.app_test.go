package app

import (
	"fmt"
	"testing"

	"nestegg/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeTopInvestments(t *testing.T) {
	rates := domain.FallbackRates()
	ownerID := uuid.New()
	householdID := uuid.New()

	newPosition := func(symbol string, quantity, price float64) domain.Position {
		p := decimal.NewFromFloat(price)
		return domain.Position{
			OwnerID:        ownerID,
			HouseholdID:    householdID,
			Symbol:         symbol,
			Name:           symbol,
			InvestmentType: domain.InvestmentType_Stock,
			Quantity:       decimal.NewFromFloat(quantity),
			AverageCost:    p,
			CurrentPrice:   &p,
			SourceCurrency: domain.CurrencyINR,
			SourceSystem:   domain.SourceSystem_Manual,
		}
	}

	t.Run("ranks by reporting currency value and caps at five", func(t *testing.T) {
		positions := []domain.Position{}
		for i := 1; i <= 7; i++ {
			positions = append(positions, newPosition(fmt.Sprintf("S%d", i), 1, float64(i*100)))
		}

		top, err := computeTopInvestments(positions, domain.CurrencyINR, rates)
		require.NoError(t, err)

		require.Len(t, top, 5)
		require.Equal(t, "S7", top[0].Symbol)
		require.Equal(t, 700.0, top[0].Value)
		require.Equal(t, "S3", top[4].Symbol)
	})

	t.Run("weights are against the whole portfolio, not the top slice", func(t *testing.T) {
		positions := []domain.Position{
			newPosition("BIG", 1, 600),
			newPosition("SMALL", 1, 400),
		}

		top, err := computeTopInvestments(positions, domain.CurrencyINR, rates)
		require.NoError(t, err)

		require.Len(t, top, 2)
		require.InDelta(t, 60.0, top[0].Weight, 1e-9)
		require.InDelta(t, 40.0, top[1].Weight, 1e-9)
	})

	t.Run("empty portfolio yields an empty slice", func(t *testing.T) {
		top, err := computeTopInvestments(nil, domain.CurrencyINR, rates)
		require.NoError(t, err)
		require.Empty(t, top)
	})
}

func TestBreakdownForSnapshot(t *testing.T) {
	breakdown := []domain.TypeBreakdown{
		{
			InvestmentType:     domain.InvestmentType_Isa,
			Currency:           domain.CurrencyGBP,
			TotalValue:         decimal.NewFromInt(600),
			TotalInvested:      decimal.NewFromInt(500),
			GainLoss:           decimal.NewFromInt(100),
			GainLossPercentage: decimal.NewFromInt(20),
			InvestmentCount:    2,
		},
	}

	rows := breakdownForSnapshot(breakdown)

	require.Len(t, rows, 1)
	require.Equal(t, "isa", rows[0].InvestmentType)
	require.Equal(t, "GBP", rows[0].Currency)
	require.Equal(t, 600.0, rows[0].TotalValue)
	require.Equal(t, 20.0, rows[0].GainLossPercentage)
	require.Equal(t, 2, rows[0].InvestmentCount)
}
