package internal

import (
	"context"
	"nestegg/internal/domain"
	"nestegg/internal/logger"

	"github.com/shopspring/decimal"
)

// Aggregate is the portfolio engine. It folds canonical positions into a
// household summary with per-member detail and per-type breakdowns, every
// headline figure in reportingCurrency and every bucket figure in the
// bucket's own currency.
//
// It is a pure pass over in-memory data: no I/O, no mutation of the inputs,
// and one rate table for the entire computation, so the same inputs always
// produce the same summary.
//
// Policies:
//   - a position whose owner is not in members still counts toward household
//     totals (an inflated-but-traceable total beats silently dropped data)
//   - zero-quantity positions contribute nothing but still count; a manual
//     placeholder entry is valid data
//   - bucket figures are converted from the position's source amounts, never
//     from the already-converted reporting figures
func Aggregate(
	ctx context.Context,
	positions []domain.Position,
	members []domain.Member,
	reportingCurrency domain.CurrencyCode,
	rates domain.ExchangeRateTable,
) domain.PortfolioSummary {
	log := logger.FromContext(ctx)

	household := newAccumulator()
	memberAccumulators := map[string]*accumulator{}
	for _, member := range members {
		memberAccumulators[member.MemberID.String()] = newAccumulator()
	}

	for _, position := range positions {
		sourceValue := position.TotalValue()
		sourceInvested := position.InvestedValue()

		currentValue := Convert(sourceValue, position.SourceCurrency, reportingCurrency, rates)
		investedValue := Convert(sourceInvested, position.SourceCurrency, reportingCurrency, rates)

		bucketCurrency, ok := position.InvestmentType.BucketCurrency()
		if !ok {
			bucketCurrency = reportingCurrency
		}
		// second conversion straight from the source amounts - converting
		// the reporting figure again would compound its rounding
		bucketValue := Convert(sourceValue, position.SourceCurrency, bucketCurrency, rates)
		bucketInvested := Convert(sourceInvested, position.SourceCurrency, bucketCurrency, rates)

		household.add(position.InvestmentType, bucketCurrency, currentValue, investedValue, bucketValue, bucketInvested)

		memberAccumulator, ok := memberAccumulators[position.OwnerID.String()]
		if !ok {
			log.Warnf("position %s owned by %s is not attributable to any supplied member; counted in household totals only",
				position.Symbol, position.OwnerID)
			continue
		}
		memberAccumulator.add(position.InvestmentType, bucketCurrency, currentValue, investedValue, bucketValue, bucketInvested)
	}

	memberSummaries := []domain.MemberSummary{}
	for _, member := range members {
		acc := memberAccumulators[member.MemberID.String()]
		memberSummaries = append(memberSummaries, domain.MemberSummary{
			MemberID:           member.MemberID,
			MemberName:         member.Name,
			TotalValue:         acc.totalValue,
			TotalInvested:      acc.totalInvested,
			TotalGainLoss:      acc.gainLoss(),
			GainLossPercentage: acc.gainLossPercentage(),
			InvestmentCount:    acc.count,
			InvestmentWise:     acc.breakdowns(),
		})
	}

	return domain.PortfolioSummary{
		ReportingCurrency:  reportingCurrency,
		TotalValue:         household.totalValue,
		TotalInvested:      household.totalInvested,
		TotalGainLoss:      household.gainLoss(),
		GainLossPercentage: household.gainLossPercentage(),
		InvestmentCount:    household.count,
		Members:            memberSummaries,
		InvestmentWise:     household.breakdowns(),
	}
}

type accumulator struct {
	totalValue    decimal.Decimal
	totalInvested decimal.Decimal
	count         int
	buckets       map[domain.InvestmentType]*bucket
}

type bucket struct {
	currency      domain.CurrencyCode
	totalValue    decimal.Decimal
	totalInvested decimal.Decimal
	count         int
}

func newAccumulator() *accumulator {
	return &accumulator{
		totalValue:    decimal.Zero,
		totalInvested: decimal.Zero,
		buckets:       map[domain.InvestmentType]*bucket{},
	}
}

func (a *accumulator) add(
	investmentType domain.InvestmentType,
	bucketCurrency domain.CurrencyCode,
	currentValue, investedValue, bucketValue, bucketInvested decimal.Decimal,
) {
	a.totalValue = a.totalValue.Add(currentValue)
	a.totalInvested = a.totalInvested.Add(investedValue)
	a.count++

	b, ok := a.buckets[investmentType]
	if !ok {
		b = &bucket{
			currency:      bucketCurrency,
			totalValue:    decimal.Zero,
			totalInvested: decimal.Zero,
		}
		a.buckets[investmentType] = b
	}
	b.totalValue = b.totalValue.Add(bucketValue)
	b.totalInvested = b.totalInvested.Add(bucketInvested)
	b.count++
}

func (a accumulator) gainLoss() decimal.Decimal {
	return a.totalValue.Sub(a.totalInvested)
}

func (a accumulator) gainLossPercentage() decimal.Decimal {
	return percentageReturn(a.gainLoss(), a.totalInvested)
}

// breakdowns emits buckets in the fixed investment-type order, so repeated
// aggregations of the same inputs produce identical summaries.
func (a accumulator) breakdowns() []domain.TypeBreakdown {
	out := []domain.TypeBreakdown{}
	for _, investmentType := range domain.AllInvestmentTypes() {
		b, ok := a.buckets[investmentType]
		if !ok {
			continue
		}
		gainLoss := b.totalValue.Sub(b.totalInvested)
		out = append(out, domain.TypeBreakdown{
			InvestmentType:     investmentType,
			Currency:           b.currency,
			TotalValue:         b.totalValue,
			TotalInvested:      b.totalInvested,
			GainLoss:           gainLoss,
			GainLossPercentage: percentageReturn(gainLoss, b.totalInvested),
			InvestmentCount:    b.count,
		})
	}
	return out
}

// percentageReturn guards the zero-invested case: a portfolio with nothing
// invested has a 0% return, not NaN, and not "fully achieved".
func percentageReturn(gainLoss, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return gainLoss.Div(invested).Mul(decimal.NewFromInt(100))
}
