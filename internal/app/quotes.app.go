package app

import (
	"context"
	"fmt"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"
	"nestegg/internal/logger"
	"nestegg/internal/repository"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type QuoteRefreshService interface {
	// RefreshPrices pulls live prices for the household's exchange-traded
	// positions and stores them as each investment's current price. Mutual
	// funds are skipped - their NAV only arrives via import.
	RefreshPrices(ctx context.Context, householdID uuid.UUID) (int, error)
}

type quoteRefreshServiceHandler struct {
	InvestmentRepository repository.InvestmentRepository
	QuoteRepository      repository.QuoteRepository
}

func NewQuoteRefreshService(
	investmentRepository repository.InvestmentRepository,
	quoteRepository repository.QuoteRepository,
) QuoteRefreshService {
	return quoteRefreshServiceHandler{
		InvestmentRepository: investmentRepository,
		QuoteRepository:      quoteRepository,
	}
}

func (h quoteRefreshServiceHandler) RefreshPrices(ctx context.Context, householdID uuid.UUID) (int, error) {
	log := logger.FromContext(ctx)

	investments, err := h.InvestmentRepository.List(repository.InvestmentListFilter{
		HouseholdID: &householdID,
	})
	if err != nil {
		return 0, err
	}

	quotable := []model.Investment{}
	symbols := []string{}
	seen := map[string]bool{}
	for _, iv := range investments {
		if iv.InvestmentType == model.InvestmentType_MutualFund {
			continue
		}
		quotable = append(quotable, iv)
		if !seen[iv.Symbol] {
			seen[iv.Symbol] = true
			symbols = append(symbols, iv.Symbol)
		}
	}
	if len(symbols) == 0 {
		return 0, nil
	}

	prices, err := h.QuoteRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest prices: %w", err)
	}

	updated := 0
	for _, iv := range quotable {
		price, ok := prices[iv.Symbol]
		if !ok {
			continue
		}
		currentPrice := price.InexactFloat64()
		totalValue := iv.Quantity * currentPrice
		iv.CurrentPrice = &currentPrice
		iv.TotalValue = &totalValue
		_, err := h.InvestmentRepository.Update(nil, iv, postgres.ColumnList{
			table.Investment.CurrentPrice,
			table.Investment.TotalValue,
		})
		if err != nil {
			log.Warnf("failed to store refreshed price for %s: %v", iv.Symbol, err)
			continue
		}
		updated++
	}

	log.Infow("refreshed live prices", "symbols", len(symbols), "updated", updated)
	return updated, nil
}
