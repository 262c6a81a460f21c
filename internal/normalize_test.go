package internal

import (
	"context"
	"fmt"
	"testing"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	mock_repository "nestegg/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalizePosition(t *testing.T) {
	normalizer := NewNormalizer(nil)
	ownerID := uuid.New()
	householdID := uuid.New()

	t.Run("pence prices become pound prices", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			HouseholdID:  householdID,
			Symbol:       "vwrp",
			Name:         "Vanguard FTSE All-World",
			Quantity:     10,
			AveragePrice: 8550, // pence
			CurrentPrice: floatPtr(9010),
			Currency:     "GBX",
			SourceSystem: "trading212",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)

		require.Equal(t, domain.CurrencyGBP, position.SourceCurrency)
		require.Equal(t, "85.5", position.AverageCost.String())
		require.Equal(t, "90.1", position.CurrentPrice.String())
		require.Equal(t, "VWRP", position.Symbol)
		require.Equal(t, domain.SourceSystem_Trading212, position.SourceSystem)
	})

	t.Run("major currencies pass through untouched", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			HouseholdID:  householdID,
			Symbol:       "RELIANCE",
			Quantity:     5,
			AveragePrice: 2400,
			Currency:     "inr",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)

		require.Equal(t, domain.CurrencyINR, position.SourceCurrency)
		require.Equal(t, "2400", position.AverageCost.String())
		require.Nil(t, position.CurrentPrice)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "AAPL",
			Quantity:     -3,
			AveragePrice: 100,
			Currency:     "USD",
		}

		_, err := normalizer.NormalizePosition(raw)
		require.Error(t, err)
		require.ErrorContains(t, err, "negative quantity")
	})

	t.Run("negative prices are rejected", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "AAPL",
			Quantity:     1,
			AveragePrice: -100,
			Currency:     "USD",
		}

		_, err := normalizer.NormalizePosition(raw)
		require.Error(t, err)
	})

	t.Run("unsupported currency is rejected", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "AAPL",
			Quantity:     1,
			AveragePrice: 100,
			Currency:     "JPY",
		}

		_, err := normalizer.NormalizePosition(raw)
		require.Error(t, err)
	})

	t.Run("missing symbol is rejected", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Quantity:     1,
			AveragePrice: 100,
			Currency:     "USD",
		}

		_, err := normalizer.NormalizePosition(raw)
		require.Error(t, err)
	})

	t.Run("missing name falls back to the symbol", func(t *testing.T) {
		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "AAPL",
			Quantity:     1,
			AveragePrice: 100,
			Currency:     "USD",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)
		require.Equal(t, "AAPL", position.Name)
	})
}

func TestNormalizePosition_DirectoryEnrichment(t *testing.T) {
	ownerID := uuid.New()

	t.Run("directory entry fills in name and currency for broker rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockSymbolRepository := mock_repository.NewMockStockSymbolRepository(ctrl)
		normalizer := NewNormalizer(stockSymbolRepository)

		stockSymbolRepository.EXPECT().
			GetByTicker("VWRP_EQ").
			Return(&model.StockSymbol{
				Ticker:       "VWRP_EQ",
				Name:         "Vanguard FTSE All-World UCITS ETF",
				CurrencyCode: "GBX",
			}, nil)

		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "VWRP_EQ",
			Quantity:     10,
			AveragePrice: 8550,
			Currency:     "USD", // the broker adapter guessed; the directory knows better
			SourceSystem: "trading212",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)

		require.Equal(t, "Vanguard FTSE All-World UCITS ETF", position.Name)
		// the enriched GBX still resolves down to GBP
		require.Equal(t, domain.CurrencyGBP, position.SourceCurrency)
		require.Equal(t, "85.5", position.AverageCost.String())
	})

	t.Run("manual rows keep their supplied currency over the directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockSymbolRepository := mock_repository.NewMockStockSymbolRepository(ctrl)
		normalizer := NewNormalizer(stockSymbolRepository)

		stockSymbolRepository.EXPECT().
			GetByTicker("VWRP_EQ").
			Return(&model.StockSymbol{
				Ticker:       "VWRP_EQ",
				Name:         "Vanguard FTSE All-World UCITS ETF",
				CurrencyCode: "GBX",
			}, nil)

		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "VWRP_EQ",
			Quantity:     1,
			AveragePrice: 10, // pounds, entered by the owner
			Currency:     "GBP",
			SourceSystem: "manual",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)

		// the directory listing the LSE line in pence must not rescale a
		// price the owner already entered in pounds
		require.Equal(t, domain.CurrencyGBP, position.SourceCurrency)
		require.Equal(t, "10", position.AverageCost.String())
		// name enrichment still applies
		require.Equal(t, "Vanguard FTSE All-World UCITS ETF", position.Name)
	})

	t.Run("equivalent pound and pence manual rows normalize identically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockSymbolRepository := mock_repository.NewMockStockSymbolRepository(ctrl)
		normalizer := NewNormalizer(stockSymbolRepository)

		stockSymbolRepository.EXPECT().
			GetByTicker("VWRP_EQ").
			Return(&model.StockSymbol{
				Ticker:       "VWRP_EQ",
				Name:         "Vanguard FTSE All-World UCITS ETF",
				CurrencyCode: "GBX",
			}, nil).
			Times(2)

		poundRow := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "VWRP_EQ",
			Quantity:     1,
			AveragePrice: 10,
			Currency:     "GBP",
			SourceSystem: "manual",
		}
		penceRow := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "VWRP_EQ",
			Quantity:     1,
			AveragePrice: 1000,
			Currency:     "GBX",
			SourceSystem: "manual",
		}

		fromPounds, err := normalizer.NormalizePosition(poundRow)
		require.NoError(t, err)
		fromPence, err := normalizer.NormalizePosition(penceRow)
		require.NoError(t, err)

		require.Equal(t, fromPounds.SourceCurrency, fromPence.SourceCurrency)
		require.Equal(t, fromPounds.AverageCost.String(), fromPence.AverageCost.String())
	})

	t.Run("directory miss keeps the original fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockSymbolRepository := mock_repository.NewMockStockSymbolRepository(ctrl)
		normalizer := NewNormalizer(stockSymbolRepository)

		stockSymbolRepository.EXPECT().
			GetByTicker("UNKNOWN").
			Return(nil, fmt.Errorf("not found"))

		raw := domain.RawPosition{
			OwnerID:      ownerID,
			Symbol:       "UNKNOWN",
			Name:         "Some Holding",
			Quantity:     1,
			AveragePrice: 10,
			Currency:     "USD",
		}

		position, err := normalizer.NormalizePosition(raw)
		require.NoError(t, err)
		require.Equal(t, "Some Holding", position.Name)
		require.Equal(t, domain.CurrencyUSD, position.SourceCurrency)
	})
}

func TestNormalizeAll(t *testing.T) {
	normalizer := NewNormalizer(nil)
	ownerID := uuid.New()

	raws := []domain.RawPosition{
		{OwnerID: ownerID, Symbol: "AAPL", Quantity: 1, AveragePrice: 100, Currency: "USD"},
		{OwnerID: ownerID, Symbol: "BROKEN", Quantity: -1, AveragePrice: 100, Currency: "USD"},
		{OwnerID: ownerID, Symbol: "RELIANCE", Quantity: 2, AveragePrice: 2400, Currency: "INR"},
	}

	positions := normalizer.NormalizeAll(context.Background(), raws)

	require.Len(t, positions, 2)
	require.Equal(t, "AAPL", positions[0].Symbol)
	require.Equal(t, "RELIANCE", positions[1].Symbol)
}

func TestResolveInvestmentType(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		assetName string
		symbol    string
		want      domain.InvestmentType
	}{
		{"explicit type wins", "isa", "Parag Parikh Flexi Cap Fund", "PPFCF", domain.InvestmentType_Isa},
		{"explicit type is case insensitive", " Mutual_Fund ", "", "X", domain.InvestmentType_MutualFund},
		{"fund keyword infers mutual fund", "", "HDFC Flexi Cap Fund", "HDFC_FLEX", domain.InvestmentType_MutualFund},
		{"etf keyword infers etf", "", "iShares Core S&P 500 ETF", "CSPX", domain.InvestmentType_Etf},
		{"bond keyword infers bond", "", "Government Security 2030", "GSEC30", domain.InvestmentType_Bond},
		{"no keywords defaults to stock", "", "Apple Inc", "AAPL", domain.InvestmentType_Stock},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveInvestmentType(tc.explicit, tc.assetName, tc.symbol))
		})
	}
}
