package internal

import (
	"context"
	"nestegg/internal/domain"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

/**

behavior - callers ask for a rate table snapshot, and should always get one.
if the cached table is fresh, return it. if it's stale, try the remote API;
when that fails we keep serving the previous table, because stale-but-valid
beats absent. the table starts from static fallback rates so aggregation
works before (or without) any network access.

refresh swaps the whole table at once - readers never see a half-updated one.

*/

const ratesRefreshInterval = 24 * time.Hour

type ExchangeRateService interface {
	// GetRates never fails; worst case it returns the previous snapshot.
	GetRates(ctx context.Context) domain.ExchangeRateTable
}

type exchangeRateServiceHandler struct {
	ExchangeRateRepository repository.ExchangeRateRepository

	mu          sync.RWMutex
	cached      domain.ExchangeRateTable
	lastFetched time.Time
}

func NewExchangeRateService(exchangeRateRepository repository.ExchangeRateRepository) ExchangeRateService {
	return &exchangeRateServiceHandler{
		ExchangeRateRepository: exchangeRateRepository,
		cached:                 domain.FallbackRates(),
	}
}

func (h *exchangeRateServiceHandler) GetRates(ctx context.Context) domain.ExchangeRateTable {
	h.mu.RLock()
	cached := h.cached
	fresh := !h.lastFetched.IsZero() && time.Since(h.lastFetched) < ratesRefreshInterval
	h.mu.RUnlock()

	if fresh {
		return cached
	}

	log := logger.FromContext(ctx)

	fetched, err := h.ExchangeRateRepository.GetLatestRates(ctx)
	if err != nil {
		log.Warnf("failed to fetch exchange rates, keeping cached table from %s: %v", cached.Source, err)
		return cached
	}

	table := buildTable(cached, fetched)
	if err := table.Validate(); err != nil {
		log.Warnf("fetched exchange rates failed validation, keeping cached table: %v", err)
		return cached
	}

	h.mu.Lock()
	h.cached = table
	h.lastFetched = time.Now().UTC()
	h.mu.Unlock()

	log.Infow("refreshed exchange rates", "asOf", table.AsOf, "source", table.Source)

	return table
}

// buildTable assembles a full table from a remote fetch, falling back to the
// previous table's rate for any code the payload was missing. GBX is always
// recomputed from GBP so the two can never drift apart.
func buildTable(previous domain.ExchangeRateTable, fetched map[domain.CurrencyCode]decimal.Decimal) domain.ExchangeRateTable {
	rates := map[domain.CurrencyCode]decimal.Decimal{
		domain.CurrencyUSD: decimal.NewFromInt(1),
	}
	for _, code := range domain.AllCurrencyCodes() {
		if code == domain.CurrencyUSD || code.IsMinorUnit() {
			continue
		}
		if rate, ok := fetched[code]; ok {
			rates[code] = rate
		} else {
			rates[code] = previous.Rate(code)
		}
	}
	for _, code := range domain.AllCurrencyCodes() {
		if code.IsMinorUnit() {
			rates[code] = rates[code.MajorUnit()].Mul(code.MinorUnitFactor())
		}
	}

	return domain.ExchangeRateTable{
		Rates:  rates,
		AsOf:   time.Now().UTC(),
		Source: "exchangerate-api",
	}
}
