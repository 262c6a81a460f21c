package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCurrencyCode(t *testing.T) {
	t.Run("accepts supported codes in any case", func(t *testing.T) {
		for _, raw := range []string{"usd", "USD", " gbp ", "GBX", "inr", "EUR"} {
			code, err := NewCurrencyCode(raw)
			require.NoError(t, err, raw)
			require.NotEmpty(t, code)
		}
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		for _, raw := range []string{"JPY", "", "dollars", "US D"} {
			_, err := NewCurrencyCode(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestCurrencyCode_MinorUnits(t *testing.T) {
	require.True(t, CurrencyGBX.IsMinorUnit())
	require.False(t, CurrencyGBP.IsMinorUnit())

	require.Equal(t, CurrencyGBP, CurrencyGBX.MajorUnit())
	require.Equal(t, CurrencyUSD, CurrencyUSD.MajorUnit())

	require.Equal(t, "100", CurrencyGBX.MinorUnitFactor().String())
	require.Equal(t, "1", CurrencyINR.MinorUnitFactor().String())
}

func TestSupportedCurrencies(t *testing.T) {
	currencies := SupportedCurrencies()
	require.Len(t, currencies, len(AllCurrencyCodes()))

	byCode := map[CurrencyCode]Currency{}
	for _, currency := range currencies {
		byCode[currency.Code] = currency
	}
	require.Equal(t, "British Pence", byCode[CurrencyGBX].Name)
	require.Equal(t, "₹", byCode[CurrencyINR].Symbol)
}
