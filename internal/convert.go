package internal

import (
	"nestegg/internal/domain"

	"github.com/shopspring/decimal"
)

// Convert moves an amount between two currencies through the USD base:
// from -> USD by dividing by rate(from), USD -> to by multiplying by
// rate(to). There are deliberately no direct pairwise rates; a single base
// path keeps A->B and A->USD->B from ever disagreeing.
//
// Rounding (2dp, half away from zero) happens exactly once, on the final
// result. Intermediate hops stay exact so the bucket conversions and the
// headline conversions can't drift apart from compounding.
//
// Identity conversions return the amount untouched - no rate lookup, no
// rounding noise on a no-op.
func Convert(amount decimal.Decimal, from, to domain.CurrencyCode, rates domain.ExchangeRateTable) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	if from == to {
		return amount
	}

	usdAmount := amount.Div(rates.Rate(from))
	return usdAmount.Mul(rates.Rate(to)).Round(2)
}

// ConvertFloat is the float edge of Convert, for callers that live at the
// serialization boundary.
func ConvertFloat(amount float64, from, to domain.CurrencyCode, rates domain.ExchangeRateTable) float64 {
	return Convert(decimal.NewFromFloat(amount), from, to, rates).InexactFloat64()
}
