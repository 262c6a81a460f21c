package domain

import "github.com/google/uuid"

// Member groups positions under one person within a household.
type Member struct {
	MemberID    uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	Email       string
}

// Household is the top-level aggregation scope.
type Household struct {
	HouseholdID     uuid.UUID
	Name            string
	DefaultCurrency CurrencyCode
}
