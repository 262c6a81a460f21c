package app

import (
	"context"
	"fmt"

	"nestegg/internal"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	"nestegg/internal/repository"

	"github.com/google/uuid"
)

type ComputeSummaryInput struct {
	HouseholdID uuid.UUID
	// optional; restricts positions to one member while keeping the full
	// member list in the output
	MemberID *uuid.UUID
	// optional; empty falls back to the household default
	ReportingCurrency string
}

type PortfolioService interface {
	ComputeSummary(ctx context.Context, in ComputeSummaryInput) (*domain.PortfolioSummary, error)
}

type portfolioServiceHandler struct {
	HouseholdRepository  repository.HouseholdRepository
	MemberRepository     repository.MemberRepository
	InvestmentRepository repository.InvestmentRepository
	ExchangeRateService  internal.ExchangeRateService
	Normalizer           *internal.Normalizer
}

func NewPortfolioService(
	householdRepository repository.HouseholdRepository,
	memberRepository repository.MemberRepository,
	investmentRepository repository.InvestmentRepository,
	exchangeRateService internal.ExchangeRateService,
	normalizer *internal.Normalizer,
) PortfolioService {
	return portfolioServiceHandler{
		HouseholdRepository:  householdRepository,
		MemberRepository:     memberRepository,
		InvestmentRepository: investmentRepository,
		ExchangeRateService:  exchangeRateService,
		Normalizer:           normalizer,
	}
}

// ComputeSummary assembles the household portfolio summary on demand. It
// takes one rate snapshot up front and hands the pure aggregation a fully
// normalized position set, so the whole response is internally consistent
// even if rates refresh mid-request.
func (h portfolioServiceHandler) ComputeSummary(ctx context.Context, in ComputeSummaryInput) (*domain.PortfolioSummary, error) {
	householdModel, err := h.HouseholdRepository.Get(in.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load household: %w", err)
	}
	household := householdFromModel(*householdModel)

	reportingCurrency := household.DefaultCurrency
	if in.ReportingCurrency != "" {
		reportingCurrency, err = domain.NewCurrencyCode(in.ReportingCurrency)
		if err != nil {
			return nil, err
		}
	}
	if reportingCurrency.IsMinorUnit() {
		return nil, fmt.Errorf("%s is a minor unit and cannot be a reporting currency", reportingCurrency)
	}

	memberModels, err := h.MemberRepository.List(in.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	members := make([]domain.Member, 0, len(memberModels))
	for _, m := range memberModels {
		members = append(members, domain.Member{
			MemberID:    m.MemberID,
			HouseholdID: m.HouseholdID,
			Name:        m.Name,
			Email:       m.Email,
		})
	}

	investments, err := h.InvestmentRepository.List(repository.InvestmentListFilter{
		HouseholdID: &in.HouseholdID,
		MemberID:    in.MemberID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	raws := make([]domain.RawPosition, 0, len(investments))
	for _, iv := range investments {
		raws = append(raws, rawPositionFromModel(iv))
	}

	rates := h.ExchangeRateService.GetRates(ctx)
	positions := h.Normalizer.NormalizeAll(ctx, raws)

	summary := internal.Aggregate(ctx, positions, members, reportingCurrency, rates)
	return &summary, nil
}

func householdFromModel(hh model.Household) domain.Household {
	return domain.Household{
		HouseholdID:     hh.HouseholdID,
		Name:            hh.Name,
		DefaultCurrency: domain.CurrencyCode(hh.DefaultCurrency),
	}
}

func rawPositionFromModel(iv model.Investment) domain.RawPosition {
	return domain.RawPosition{
		OwnerID:        iv.MemberID,
		HouseholdID:    iv.HouseholdID,
		Symbol:         iv.Symbol,
		Name:           iv.Name,
		InvestmentType: iv.InvestmentType.String(),
		Quantity:       iv.Quantity,
		AveragePrice:   iv.AveragePrice,
		CurrentPrice:   iv.CurrentPrice,
		Currency:       iv.Currency,
		SourceSystem:   iv.SourceSystem.String(),
	}
}
