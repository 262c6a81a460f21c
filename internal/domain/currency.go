package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyCode is the closed set of currencies the system understands.
// Adding a currency means touching every switch below, which is the point -
// the compiler flags the spots instead of a map lookup silently falling
// through to the raw code.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyGBX CurrencyCode = "GBX" // pence, 100 GBX = 1 GBP
	CurrencyINR CurrencyCode = "INR"
)

func AllCurrencyCodes() []CurrencyCode {
	return []CurrencyCode{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyGBX, CurrencyINR}
}

// NewCurrencyCode validates a raw currency string at the boundary. Everything
// downstream of this assumes codes are well-formed.
func NewCurrencyCode(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	switch code {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyGBX, CurrencyINR:
		return code, nil
	}
	return "", fmt.Errorf("unsupported currency code %q", raw)
}

func (c CurrencyCode) String() string {
	return string(c)
}

func (c CurrencyCode) Name() string {
	switch c {
	case CurrencyUSD:
		return "US Dollar"
	case CurrencyEUR:
		return "Euro"
	case CurrencyGBP:
		return "British Pound"
	case CurrencyGBX:
		return "British Pence"
	case CurrencyINR:
		return "Indian Rupee"
	}
	return string(c)
}

func (c CurrencyCode) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	case CurrencyGBP:
		return "£"
	case CurrencyGBX:
		return "p"
	case CurrencyINR:
		return "₹"
	}
	return string(c)
}

// IsMinorUnit reports whether the code denominates a fraction of another
// currency rather than a currency of its own.
func (c CurrencyCode) IsMinorUnit() bool {
	return c == CurrencyGBX
}

// MajorUnit returns the currency a minor-unit code is a fraction of.
// Major currencies return themselves.
func (c CurrencyCode) MajorUnit() CurrencyCode {
	if c == CurrencyGBX {
		return CurrencyGBP
	}
	return c
}

// MinorUnitFactor returns how many minor units make one major unit.
func (c CurrencyCode) MinorUnitFactor() decimal.Decimal {
	if c == CurrencyGBX {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(1)
}

// Currency is the catalog entry exposed to callers that render pickers.
type Currency struct {
	Code   CurrencyCode `json:"code"`
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
}

func SupportedCurrencies() []Currency {
	out := []Currency{}
	for _, code := range AllCurrencyCodes() {
		out = append(out, Currency{Code: code, Name: code.Name(), Symbol: code.Symbol()})
	}
	return out
}

// ExchangeRateTable is a point-in-time snapshot of USD-relative rates.
// rate(C) is how many units of C one USD buys, so USD is always exactly 1.
// Tables are passed by value into aggregation so one summary never sees two
// different rate sets.
type ExchangeRateTable struct {
	Rates  map[CurrencyCode]decimal.Decimal
	AsOf   time.Time
	Source string
}

func (t ExchangeRateTable) Rate(code CurrencyCode) decimal.Decimal {
	return t.Rates[code]
}

// Validate enforces the structural invariants: base currency pinned to 1,
// every supported code present with a positive rate, and GBX derived from GBP
// rather than drifting on its own.
func (t ExchangeRateTable) Validate() error {
	if !t.Rate(CurrencyUSD).Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("exchange rate table: base currency USD must be 1, got %s", t.Rate(CurrencyUSD))
	}
	for _, code := range AllCurrencyCodes() {
		rate, ok := t.Rates[code]
		if !ok {
			return fmt.Errorf("exchange rate table: missing rate for %s", code)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("exchange rate table: rate for %s must be positive, got %s", code, rate)
		}
	}
	expectedGbx := t.Rate(CurrencyGBP).Mul(CurrencyGBX.MinorUnitFactor())
	if !t.Rate(CurrencyGBX).Equal(expectedGbx) {
		return fmt.Errorf("exchange rate table: GBX rate %s does not equal GBP rate x100 (%s)", t.Rate(CurrencyGBX), expectedGbx)
	}
	return nil
}

// FallbackRates is the static table the service starts with, so conversions
// work before the first successful remote fetch. Approximate 2024 figures.
func FallbackRates() ExchangeRateTable {
	gbp := decimal.NewFromFloat(0.79)
	return ExchangeRateTable{
		Rates: map[CurrencyCode]decimal.Decimal{
			CurrencyUSD: decimal.NewFromInt(1),
			CurrencyEUR: decimal.NewFromFloat(0.85),
			CurrencyGBP: gbp,
			CurrencyGBX: gbp.Mul(decimal.NewFromInt(100)),
			CurrencyINR: decimal.NewFromFloat(83.0),
		},
		Source: "static-fallback",
	}
}
