package util

import (
	"github.com/shopspring/decimal"
)

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StringPointer(s string) *string {
	return &s
}
