package internal

import (
	"context"
	"fmt"
	"testing"

	"nestegg/internal/domain"
	mock_repository "nestegg/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExchangeRateService_GetRates(t *testing.T) {
	ctx := context.Background()

	t.Run("serves fallback rates when the remote fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		service := NewExchangeRateService(exchangeRateRepository)

		exchangeRateRepository.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		table := service.GetRates(ctx)

		require.Equal(t, "static-fallback", table.Source)
		require.NoError(t, table.Validate())
	})

	t.Run("swaps in the fetched table and derives gbx from gbp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		service := NewExchangeRateService(exchangeRateRepository)

		exchangeRateRepository.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[domain.CurrencyCode]decimal.Decimal{
				domain.CurrencyEUR: decimal.NewFromFloat(0.92),
				domain.CurrencyGBP: decimal.NewFromFloat(0.8),
				domain.CurrencyINR: decimal.NewFromFloat(84.5),
			}, nil)

		table := service.GetRates(ctx)

		require.Equal(t, "exchangerate-api", table.Source)
		require.Equal(t, "1", table.Rate(domain.CurrencyUSD).String())
		require.Equal(t, "0.8", table.Rate(domain.CurrencyGBP).String())
		require.Equal(t, "80", table.Rate(domain.CurrencyGBX).String())
		require.NoError(t, table.Validate())
	})

	t.Run("fresh table is served without refetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		service := NewExchangeRateService(exchangeRateRepository)

		exchangeRateRepository.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[domain.CurrencyCode]decimal.Decimal{
				domain.CurrencyEUR: decimal.NewFromFloat(0.92),
				domain.CurrencyGBP: decimal.NewFromFloat(0.8),
				domain.CurrencyINR: decimal.NewFromFloat(84.5),
			}, nil).
			Times(1)

		first := service.GetRates(ctx)
		second := service.GetRates(ctx)

		require.Equal(t, first.AsOf, second.AsOf)
	})

	t.Run("keeps the previous rate for codes missing from the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		service := NewExchangeRateService(exchangeRateRepository)

		exchangeRateRepository.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[domain.CurrencyCode]decimal.Decimal{
				domain.CurrencyGBP: decimal.NewFromFloat(0.8),
			}, nil)

		table := service.GetRates(ctx)

		// EUR and INR carry over from the fallback table
		require.Equal(t, "0.85", table.Rate(domain.CurrencyEUR).String())
		require.Equal(t, "83", table.Rate(domain.CurrencyINR).String())
		require.Equal(t, "0.8", table.Rate(domain.CurrencyGBP).String())
	})

	t.Run("rejects a fetched table that fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exchangeRateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		service := NewExchangeRateService(exchangeRateRepository)

		exchangeRateRepository.EXPECT().
			GetLatestRates(gomock.Any()).
			Return(map[domain.CurrencyCode]decimal.Decimal{
				domain.CurrencyGBP: decimal.NewFromFloat(-0.8),
			}, nil)

		table := service.GetRates(ctx)

		require.Equal(t, "static-fallback", table.Source)
	})
}

func TestExchangeRateTable_Validate(t *testing.T) {
	t.Run("fallback table is valid", func(t *testing.T) {
		require.NoError(t, domain.FallbackRates().Validate())
	})

	t.Run("base currency must be one", func(t *testing.T) {
		table := domain.FallbackRates()
		table.Rates[domain.CurrencyUSD] = decimal.NewFromInt(2)
		require.Error(t, table.Validate())
	})

	t.Run("gbx must be gbp times one hundred", func(t *testing.T) {
		table := domain.FallbackRates()
		table.Rates[domain.CurrencyGBX] = decimal.NewFromInt(42)
		require.Error(t, table.Validate())
	})

	t.Run("missing code is rejected", func(t *testing.T) {
		table := domain.FallbackRates()
		delete(table.Rates, domain.CurrencyEUR)
		require.Error(t, table.Validate())
	})
}
