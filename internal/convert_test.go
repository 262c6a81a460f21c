package internal

import (
	"testing"

	"nestegg/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	rates := domain.FallbackRates()

	t.Run("identity conversion returns the amount untouched", func(t *testing.T) {
		amount := decimal.NewFromFloat(123.456)
		got := Convert(amount, domain.CurrencyINR, domain.CurrencyINR, rates)
		require.Equal(t, "123.456", got.String())
	})

	t.Run("zero amount converts to zero", func(t *testing.T) {
		got := Convert(decimal.Zero, domain.CurrencyGBP, domain.CurrencyINR, rates)
		require.Equal(t, "0", got.String())
	})

	t.Run("converts through the usd base", func(t *testing.T) {
		// 100 GBP -> USD = 100 / 0.79, -> INR = x 83
		got := Convert(decimal.NewFromInt(100), domain.CurrencyGBP, domain.CurrencyINR, rates)
		require.Equal(t, "10506.33", got.String())
	})

	t.Run("converting to usd divides by the source rate", func(t *testing.T) {
		got := Convert(decimal.NewFromInt(100), domain.CurrencyGBP, domain.CurrencyUSD, rates)
		require.Equal(t, "126.58", got.String())
	})

	t.Run("gbx and gbp amounts are equivalent", func(t *testing.T) {
		fromPence := Convert(decimal.NewFromInt(10000), domain.CurrencyGBX, domain.CurrencyUSD, rates)
		fromPounds := Convert(decimal.NewFromInt(100), domain.CurrencyGBP, domain.CurrencyUSD, rates)
		require.Equal(t, fromPounds.String(), fromPence.String())
	})

	t.Run("gbp to gbx multiplies by one hundred", func(t *testing.T) {
		got := Convert(decimal.NewFromInt(1), domain.CurrencyGBP, domain.CurrencyGBX, rates)
		require.Equal(t, "100", got.String())
	})

	t.Run("round trips within rounding tolerance", func(t *testing.T) {
		amount := decimal.NewFromFloat(2500.00)
		there := Convert(amount, domain.CurrencyINR, domain.CurrencyGBP, rates)
		back := Convert(there, domain.CurrencyGBP, domain.CurrencyINR, rates)

		diff := back.Sub(amount).Abs()
		require.True(t, diff.LessThanOrEqual(decimal.NewFromInt(1)), "round trip drifted by %s", diff)
	})

	t.Run("rounds once on the final result", func(t *testing.T) {
		// 1 USD -> EUR at 0.85 needs no rounding; a longer tail does
		got := Convert(decimal.NewFromFloat(10.01), domain.CurrencyEUR, domain.CurrencyUSD, rates)
		// 10.01 / 0.85 = 11.77647...
		require.Equal(t, "11.78", got.String())
	})
}

func TestConvertFloat(t *testing.T) {
	rates := domain.FallbackRates()

	got := ConvertFloat(100, domain.CurrencyUSD, domain.CurrencyINR, rates)
	require.Equal(t, 8300.0, got)
}
