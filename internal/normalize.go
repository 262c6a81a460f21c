package internal

import (
	"context"
	"fmt"
	"strings"

	"nestegg/internal/domain"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"nestegg/internal/util"

	"github.com/shopspring/decimal"
)

// Normalizer turns raw position records from any source into canonical
// positions: resolved investment type, major-unit currency, non-negative
// quantity and prices. Unit resolution happens here, once, at ingestion -
// downstream consumers never special-case pence again.
type Normalizer struct {
	// optional; enrichment is skipped when nil
	StockSymbolRepository repository.StockSymbolRepository
}

func NewNormalizer(stockSymbolRepository repository.StockSymbolRepository) *Normalizer {
	return &Normalizer{
		StockSymbolRepository: stockSymbolRepository,
	}
}

// NormalizePosition converts one raw record. A negative quantity or price is
// a precondition violation from the source adapter (usually signed buy/sell
// netting gone wrong) and is rejected, never clamped - see the sync service
// for where net-negative inferred positions get dropped.
func (n *Normalizer) NormalizePosition(raw domain.RawPosition) (domain.Position, error) {
	if raw.Quantity < 0 {
		return domain.Position{}, fmt.Errorf("position %s has negative quantity %f; source adapter must resolve netting before ingestion", raw.Symbol, raw.Quantity)
	}
	if raw.AveragePrice < 0 {
		return domain.Position{}, fmt.Errorf("position %s has negative average price %f", raw.Symbol, raw.AveragePrice)
	}
	if raw.CurrentPrice != nil && *raw.CurrentPrice < 0 {
		return domain.Position{}, fmt.Errorf("position %s has negative current price %f", raw.Symbol, *raw.CurrentPrice)
	}

	currency, err := domain.NewCurrencyCode(raw.Currency)
	if err != nil {
		return domain.Position{}, fmt.Errorf("position %s: %w", raw.Symbol, err)
	}

	name := strings.TrimSpace(raw.Name)
	symbol := strings.ToUpper(strings.TrimSpace(raw.Symbol))
	if symbol == "" {
		return domain.Position{}, fmt.Errorf("position with owner %s has no symbol", raw.OwnerID)
	}
	sourceSystem := resolveSourceSystem(raw.SourceSystem)

	// best-effort enrichment from the symbol directory; a miss keeps the
	// original fields
	if n.StockSymbolRepository != nil {
		directoryEntry, err := n.StockSymbolRepository.GetByTicker(symbol)
		if err == nil && directoryEntry != nil {
			if name == "" || name == symbol {
				name = directoryEntry.Name
			}
			// the broker adapter guesses the currency when instrument
			// metadata is missing, so the directory wins there. A currency
			// supplied with a manual or imported row is authoritative -
			// overriding it would rescale pence-vs-pound prices the owner
			// already entered correctly.
			if sourceSystem == domain.SourceSystem_Trading212 {
				if enriched, err := domain.NewCurrencyCode(directoryEntry.CurrencyCode); err == nil {
					currency = enriched
				}
			}
		}
	}
	if name == "" {
		name = symbol
	}

	quantity := decimal.NewFromFloat(raw.Quantity)
	averageCost := decimal.NewFromFloat(raw.AveragePrice)
	var currentPrice *decimal.Decimal
	if raw.CurrentPrice != nil {
		currentPrice = util.DecimalPointer(decimal.NewFromFloat(*raw.CurrentPrice))
	}

	// minor-unit resolution: a pence-priced position becomes a pound-priced
	// one so every currency code means one thing everywhere downstream
	if currency.IsMinorUnit() {
		factor := currency.MinorUnitFactor()
		averageCost = averageCost.Div(factor)
		if currentPrice != nil {
			currentPrice = util.DecimalPointer(currentPrice.Div(factor))
		}
		currency = currency.MajorUnit()
	}

	return domain.Position{
		OwnerID:        raw.OwnerID,
		HouseholdID:    raw.HouseholdID,
		Symbol:         symbol,
		Name:           name,
		InvestmentType: ResolveInvestmentType(raw.InvestmentType, name, symbol),
		Quantity:       quantity,
		AverageCost:    averageCost,
		CurrentPrice:   currentPrice,
		SourceCurrency: currency,
		SourceSystem:   sourceSystem,
	}, nil
}

// NormalizeAll normalizes a batch, dropping and logging bad rows. One broken
// record must never take down a whole household's aggregation.
func (n *Normalizer) NormalizeAll(ctx context.Context, raws []domain.RawPosition) []domain.Position {
	log := logger.FromContext(ctx)

	out := []domain.Position{}
	for _, raw := range raws {
		position, err := n.NormalizePosition(raw)
		if err != nil {
			log.Warnf("skipping unparseable position: %v", err)
			continue
		}
		out = append(out, position)
	}
	return out
}

// ResolveInvestmentType prefers the explicit type from the source, and only
// falls back to keyword inference over the name and symbol when the source
// gave nothing usable.
func ResolveInvestmentType(explicit, name, symbol string) domain.InvestmentType {
	switch domain.InvestmentType(strings.ToLower(strings.TrimSpace(explicit))) {
	case domain.InvestmentType_Stock:
		return domain.InvestmentType_Stock
	case domain.InvestmentType_MutualFund:
		return domain.InvestmentType_MutualFund
	case domain.InvestmentType_Isa:
		return domain.InvestmentType_Isa
	case domain.InvestmentType_Etf:
		return domain.InvestmentType_Etf
	case domain.InvestmentType_Bond:
		return domain.InvestmentType_Bond
	case domain.InvestmentType_Other:
		return domain.InvestmentType_Other
	}

	allText := strings.ToLower(name + " " + symbol)

	fundKeywords := []string{"fund", "mutual", "scheme", "plan", "growth", "dividend"}
	etfKeywords := []string{"etf", "exchange traded", "index fund"}
	bondKeywords := []string{"bond", "debenture", "fixed income", "government security"}

	if containsAny(allText, fundKeywords) {
		return domain.InvestmentType_MutualFund
	}
	if containsAny(allText, etfKeywords) {
		return domain.InvestmentType_Etf
	}
	if containsAny(allText, bondKeywords) {
		return domain.InvestmentType_Bond
	}
	return domain.InvestmentType_Stock
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func resolveSourceSystem(raw string) domain.SourceSystem {
	switch domain.SourceSystem(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.SourceSystem_Manual:
		return domain.SourceSystem_Manual
	case domain.SourceSystem_Trading212:
		return domain.SourceSystem_Trading212
	case domain.SourceSystem_Tickertape:
		return domain.SourceSystem_Tickertape
	}
	return domain.SourceSystem_Other
}
