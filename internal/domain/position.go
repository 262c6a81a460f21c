package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvestmentType string

const (
	InvestmentType_Stock      InvestmentType = "stock"
	InvestmentType_MutualFund InvestmentType = "mutual_fund"
	InvestmentType_Isa        InvestmentType = "isa"
	InvestmentType_Etf        InvestmentType = "etf"
	InvestmentType_Bond       InvestmentType = "bond"
	InvestmentType_Other      InvestmentType = "other"
)

func AllInvestmentTypes() []InvestmentType {
	return []InvestmentType{
		InvestmentType_Stock,
		InvestmentType_MutualFund,
		InvestmentType_Isa,
		InvestmentType_Etf,
		InvestmentType_Bond,
		InvestmentType_Other,
	}
}

// BucketCurrency is the domain-conventional currency the type's breakdown is
// reported in. ISA accounts live in the UK, mutual funds and direct stocks in
// this household domain live in India; everything else follows the caller's
// reporting currency (ok=false).
func (t InvestmentType) BucketCurrency() (CurrencyCode, bool) {
	switch t {
	case InvestmentType_Isa:
		return CurrencyGBP, true
	case InvestmentType_MutualFund, InvestmentType_Stock:
		return CurrencyINR, true
	}
	return "", false
}

type SourceSystem string

const (
	SourceSystem_Manual     SourceSystem = "manual"
	SourceSystem_Trading212 SourceSystem = "trading212"
	SourceSystem_Tickertape SourceSystem = "tickertape"
	SourceSystem_Other      SourceSystem = "other"
)

// RawPosition is the shape positions arrive in from storage and from the
// sync/import adapters, before any unit or type resolution.
type RawPosition struct {
	OwnerID        uuid.UUID
	HouseholdID    uuid.UUID
	Symbol         string
	Name           string
	InvestmentType string
	Quantity       float64
	AveragePrice   float64
	CurrentPrice   *float64
	Currency       string
	SourceSystem   string
}

// Position is the canonical, normalized record every downstream consumer
// sees: unambiguous major-unit currency, non-negative quantity and prices.
type Position struct {
	OwnerID        uuid.UUID
	HouseholdID    uuid.UUID
	Symbol         string
	Name           string
	InvestmentType InvestmentType
	Quantity       decimal.Decimal
	AverageCost    decimal.Decimal // per unit, in SourceCurrency
	CurrentPrice   *decimal.Decimal
	SourceCurrency CurrencyCode
	SourceSystem   SourceSystem
}

// EffectivePrice is the per-unit price used for current value. A position
// with no live price values at cost, so it reports zero unrealized gain
// rather than failing.
func (p Position) EffectivePrice() decimal.Decimal {
	if p.CurrentPrice != nil {
		return *p.CurrentPrice
	}
	return p.AverageCost
}

// TotalValue is quantity x effective price, denominated in SourceCurrency.
func (p Position) TotalValue() decimal.Decimal {
	return p.Quantity.Mul(p.EffectivePrice())
}

// InvestedValue is quantity x average cost, denominated in SourceCurrency.
func (p Position) InvestedValue() decimal.Decimal {
	return p.Quantity.Mul(p.AverageCost)
}
