package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeBreakdown is one investment-type bucket of a summary. Currency is the
// bucket's own reporting currency, which is independent of the summary's
// headline currency (ISA buckets are conventionally read in GBP, mutual fund
// and stock buckets in INR).
type TypeBreakdown struct {
	InvestmentType     InvestmentType
	Currency           CurrencyCode
	TotalValue         decimal.Decimal
	TotalInvested      decimal.Decimal
	GainLoss           decimal.Decimal
	GainLossPercentage decimal.Decimal
	InvestmentCount    int
}

// MemberSummary is the portfolio summary scoped to one member. Monetary
// fields except the breakdown are in the summary's reporting currency.
type MemberSummary struct {
	MemberID           uuid.UUID
	MemberName         string
	TotalValue         decimal.Decimal
	TotalInvested      decimal.Decimal
	TotalGainLoss      decimal.Decimal
	GainLossPercentage decimal.Decimal
	InvestmentCount    int
	InvestmentWise     []TypeBreakdown
}

// PortfolioSummary is the household-level aggregation result. It is computed
// on demand from positions and never treated as a source of truth.
type PortfolioSummary struct {
	ReportingCurrency  CurrencyCode
	TotalValue         decimal.Decimal
	TotalInvested      decimal.Decimal
	TotalGainLoss      decimal.Decimal
	GainLossPercentage decimal.Decimal
	InvestmentCount    int
	Members            []MemberSummary
	InvestmentWise     []TypeBreakdown
}
