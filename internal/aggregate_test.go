package internal

import (
	"context"
	"testing"

	"nestegg/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	ctx := context.Background()
	rates := domain.FallbackRates()

	householdID := uuid.New()
	alice := domain.Member{MemberID: uuid.New(), HouseholdID: householdID, Name: "Alice"}
	bob := domain.Member{MemberID: uuid.New(), HouseholdID: householdID, Name: "Bob"}
	members := []domain.Member{alice, bob}

	t.Run("empty positions and members yield a zeroed summary", func(t *testing.T) {
		summary := Aggregate(ctx, nil, nil, domain.CurrencyINR, rates)

		require.Equal(t, "0", summary.TotalValue.String())
		require.Equal(t, "0", summary.TotalInvested.String())
		require.Equal(t, "0", summary.GainLossPercentage.String())
		require.Equal(t, 0, summary.InvestmentCount)
		require.Empty(t, summary.Members)
		require.Empty(t, summary.InvestmentWise)
	})

	t.Run("household totals equal the sum of member totals", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "VWRP", domain.InvestmentType_Isa, domain.CurrencyGBP, 10, 50, floatPtr(60)),
			newTestPosition(bob.MemberID, householdID, "RELIANCE", domain.InvestmentType_Stock, domain.CurrencyINR, 5, 100, floatPtr(120)),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		require.Equal(t, 2, summary.InvestmentCount)
		require.Len(t, summary.Members, 2)

		memberValue := decimal.Zero
		memberInvested := decimal.Zero
		for _, member := range summary.Members {
			memberValue = memberValue.Add(member.TotalValue)
			memberInvested = memberInvested.Add(member.TotalInvested)
		}
		require.Equal(t, summary.TotalValue.String(), memberValue.String())
		require.Equal(t, summary.TotalInvested.String(), memberInvested.String())
	})

	t.Run("converts member values into the reporting currency", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "VWRP", domain.InvestmentType_Isa, domain.CurrencyGBP, 10, 50, floatPtr(60)),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		// 600 GBP -> 63037.97 INR, 500 GBP -> 52531.65 INR
		require.Equal(t, "63037.97", summary.TotalValue.String())
		require.Equal(t, "52531.65", summary.TotalInvested.String())
		require.Equal(t, "10506.32", summary.TotalGainLoss.String())
	})

	t.Run("position with unknown owner counts toward household totals only", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "VWRP", domain.InvestmentType_Isa, domain.CurrencyGBP, 10, 50, floatPtr(60)),
			newTestPosition(uuid.New(), householdID, "ORPHAN", domain.InvestmentType_Other, domain.CurrencyUSD, 1, 10, nil),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		require.Equal(t, 2, summary.InvestmentCount)

		memberValue := decimal.Zero
		for _, member := range summary.Members {
			memberValue = memberValue.Add(member.TotalValue)
		}
		require.True(t, summary.TotalValue.GreaterThan(memberValue))
	})

	t.Run("zero invested reports zero percent gain", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "GIFT", domain.InvestmentType_Stock, domain.CurrencyINR, 2, 0, floatPtr(5)),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		require.Equal(t, "10", summary.TotalValue.String())
		require.Equal(t, "0", summary.TotalInvested.String())
		require.Equal(t, "0", summary.GainLossPercentage.String())
	})

	t.Run("zero quantity positions contribute nothing but still count", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "PLACEHOLDER", domain.InvestmentType_Stock, domain.CurrencyINR, 0, 100, nil),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		require.Equal(t, 1, summary.InvestmentCount)
		require.Equal(t, "0", summary.TotalValue.String())
	})

	t.Run("breakdown buckets carry their conventional currencies", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "VWRP", domain.InvestmentType_Isa, domain.CurrencyGBP, 10, 50, floatPtr(60)),
			newTestPosition(bob.MemberID, householdID, "RELIANCE", domain.InvestmentType_Stock, domain.CurrencyINR, 5, 100, floatPtr(120)),
			newTestPosition(bob.MemberID, householdID, "PPFAS", domain.InvestmentType_MutualFund, domain.CurrencyINR, 100, 10, floatPtr(12)),
			newTestPosition(alice.MemberID, householdID, "TLT", domain.InvestmentType_Bond, domain.CurrencyUSD, 1, 90, nil),
		}

		summary := Aggregate(ctx, positions, members, domain.CurrencyEUR, rates)

		byType := map[domain.InvestmentType]domain.TypeBreakdown{}
		for _, breakdown := range summary.InvestmentWise {
			byType[breakdown.InvestmentType] = breakdown
		}

		require.Equal(t, domain.CurrencyGBP, byType[domain.InvestmentType_Isa].Currency)
		require.Equal(t, domain.CurrencyINR, byType[domain.InvestmentType_Stock].Currency)
		require.Equal(t, domain.CurrencyINR, byType[domain.InvestmentType_MutualFund].Currency)
		// no domain convention for bonds, so they follow the reporting currency
		require.Equal(t, domain.CurrencyEUR, byType[domain.InvestmentType_Bond].Currency)

		// bucket figures stay in the bucket currency, untouched by the
		// reporting conversion
		require.Equal(t, "600", byType[domain.InvestmentType_Isa].TotalValue.String())
		require.Equal(t, "600", byType[domain.InvestmentType_Stock].TotalValue.String())
	})

	t.Run("aggregation is deterministic", func(t *testing.T) {
		positions := []domain.Position{
			newTestPosition(alice.MemberID, householdID, "VWRP", domain.InvestmentType_Isa, domain.CurrencyGBP, 10, 50, floatPtr(60)),
			newTestPosition(bob.MemberID, householdID, "RELIANCE", domain.InvestmentType_Stock, domain.CurrencyINR, 5, 100, floatPtr(120)),
			newTestPosition(bob.MemberID, householdID, "PPFAS", domain.InvestmentType_MutualFund, domain.CurrencyINR, 100, 10, floatPtr(12)),
		}

		first := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)
		second := Aggregate(ctx, positions, members, domain.CurrencyINR, rates)

		require.Equal(t, "", cmp.Diff(first, second))
	})
}

func TestPercentageReturn(t *testing.T) {
	t.Run("positive return", func(t *testing.T) {
		got := percentageReturn(decimal.NewFromInt(50), decimal.NewFromInt(200))
		require.Equal(t, "25", got.String())
	})
	t.Run("loss", func(t *testing.T) {
		got := percentageReturn(decimal.NewFromInt(-50), decimal.NewFromInt(200))
		require.Equal(t, "-25", got.String())
	})
	t.Run("zero invested", func(t *testing.T) {
		got := percentageReturn(decimal.NewFromInt(50), decimal.Zero)
		require.Equal(t, "0", got.String())
	})
}

func newTestPosition(
	ownerID, householdID uuid.UUID,
	symbol string,
	investmentType domain.InvestmentType,
	currency domain.CurrencyCode,
	quantity, averageCost float64,
	currentPrice *float64,
) domain.Position {
	position := domain.Position{
		OwnerID:        ownerID,
		HouseholdID:    householdID,
		Symbol:         symbol,
		Name:           symbol,
		InvestmentType: investmentType,
		Quantity:       decimal.NewFromFloat(quantity),
		AverageCost:    decimal.NewFromFloat(averageCost),
		SourceCurrency: currency,
		SourceSystem:   domain.SourceSystem_Manual,
	}
	if currentPrice != nil {
		p := decimal.NewFromFloat(*currentPrice)
		position.CurrentPrice = &p
	}
	return position
}

func floatPtr(f float64) *float64 {
	return &f
}
