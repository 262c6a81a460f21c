package repository

import (
	"context"
	"fmt"

	"nestegg/internal/logger"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type QuoteRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

type quoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

func (h quoteRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		q, err := quote.Get(symbol)
		if err != nil {
			// quotes are best effort - positions without a live price
			// fall back to their stored price
			log.Warnf("failed to get quote for %s: %v", symbol, err)
			continue
		}
		if q == nil {
			log.Warnf("no quote returned for %s", symbol)
			continue
		}
		price := decimal.NewFromFloat(q.RegularMarketPrice)
		if price.IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
		out[symbol] = price
	}

	return out, nil
}
