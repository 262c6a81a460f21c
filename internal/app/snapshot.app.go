package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"nestegg/internal"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	"nestegg/internal/logger"
	"nestegg/internal/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

const topInvestmentsPerSnapshot = 5

type SnapshotService interface {
	// CaptureSnapshot persists the household summary and one row per member
	// as of now, for historical tracking.
	CaptureSnapshot(ctx context.Context, householdID uuid.UUID) (*model.PortfolioSnapshot, error)
}

type snapshotServiceHandler struct {
	Db                          *sql.DB
	HouseholdRepository         repository.HouseholdRepository
	MemberRepository            repository.MemberRepository
	InvestmentRepository        repository.InvestmentRepository
	PortfolioSnapshotRepository repository.PortfolioSnapshotRepository
	ExchangeRateService         internal.ExchangeRateService
	Normalizer                  *internal.Normalizer
}

func NewSnapshotService(
	db *sql.DB,
	householdRepository repository.HouseholdRepository,
	memberRepository repository.MemberRepository,
	investmentRepository repository.InvestmentRepository,
	portfolioSnapshotRepository repository.PortfolioSnapshotRepository,
	exchangeRateService internal.ExchangeRateService,
	normalizer *internal.Normalizer,
) SnapshotService {
	return snapshotServiceHandler{
		Db:                          db,
		HouseholdRepository:         householdRepository,
		MemberRepository:            memberRepository,
		InvestmentRepository:        investmentRepository,
		PortfolioSnapshotRepository: portfolioSnapshotRepository,
		ExchangeRateService:         exchangeRateService,
		Normalizer:                  normalizer,
	}
}

type topInvestment struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

func (h snapshotServiceHandler) CaptureSnapshot(ctx context.Context, householdID uuid.UUID) (*model.PortfolioSnapshot, error) {
	log := logger.FromContext(ctx)

	household, err := h.HouseholdRepository.Get(householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load household: %w", err)
	}
	reportingCurrency, err := domain.NewCurrencyCode(household.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	memberModels, err := h.MemberRepository.List(householdID)
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

	investments, err := h.InvestmentRepository.List(repository.InvestmentListFilter{HouseholdID: &householdID})
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

	topInvestments, err := computeTopInvestments(positions, reportingCurrency, rates)
	if err != nil {
		return nil, err
	}
	topInvestmentsJSON, err := json.Marshal(topInvestments)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize top investments: %w", err)
	}

	snapshotDate := time.Now().UTC()

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	householdRow, err := h.addSnapshotRow(tx, householdID, nil, summaryTotals{
		reportingCurrency:  reportingCurrency,
		totalValue:         summary.TotalValue.InexactFloat64(),
		totalInvested:      summary.TotalInvested.InexactFloat64(),
		totalGainLoss:      summary.TotalGainLoss.InexactFloat64(),
		gainLossPercentage: summary.GainLossPercentage.InexactFloat64(),
		investmentCount:    summary.InvestmentCount,
		breakdown:          summary.InvestmentWise,
		topInvestments:     string(topInvestmentsJSON),
	}, snapshotDate)
	if err != nil {
		return nil, err
	}

	for _, member := range summary.Members {
		memberID := member.MemberID
		_, err := h.addSnapshotRow(tx, householdID, &memberID, summaryTotals{
			reportingCurrency:  reportingCurrency,
			totalValue:         member.TotalValue.InexactFloat64(),
			totalInvested:      member.TotalInvested.InexactFloat64(),
			totalGainLoss:      member.TotalGainLoss.InexactFloat64(),
			gainLossPercentage: member.GainLossPercentage.InexactFloat64(),
			investmentCount:    member.InvestmentCount,
			breakdown:          member.InvestmentWise,
		}, snapshotDate)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	log.Infow("captured portfolio snapshot",
		"householdID", householdID,
		"totalValue", summary.TotalValue,
		"members", len(summary.Members),
	)

	return householdRow, nil
}

type summaryTotals struct {
	reportingCurrency  domain.CurrencyCode
	totalValue         float64
	totalInvested      float64
	totalGainLoss      float64
	gainLossPercentage float64
	investmentCount    int
	breakdown          []domain.TypeBreakdown
	topInvestments     string
}

func (h snapshotServiceHandler) addSnapshotRow(
	tx *sql.Tx,
	householdID uuid.UUID,
	memberID *uuid.UUID,
	totals summaryTotals,
	snapshotDate time.Time,
) (*model.PortfolioSnapshot, error) {
	breakdownJSON, err := json.Marshal(breakdownForSnapshot(totals.breakdown))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize type breakdown: %w", err)
	}
	breakdownStr := string(breakdownJSON)

	row := model.PortfolioSnapshot{
		HouseholdID:        householdID,
		MemberID:           memberID,
		ReportingCurrency:  totals.reportingCurrency.String(),
		TotalValue:         totals.totalValue,
		TotalInvested:      totals.totalInvested,
		TotalGainLoss:      totals.totalGainLoss,
		GainLossPercentage: totals.gainLossPercentage,
		InvestmentCount:    int32(totals.investmentCount),
		TypeBreakdown:      &breakdownStr,
		SnapshotDate:       snapshotDate,
	}
	if totals.topInvestments != "" {
		row.TopInvestments = &totals.topInvestments
	}

	return h.PortfolioSnapshotRepository.Add(tx, row)
}

type snapshotBreakdown struct {
	InvestmentType     string  `json:"investmentType"`
	Currency           string  `json:"currency"`
	TotalValue         float64 `json:"totalValue"`
	TotalInvested      float64 `json:"totalInvested"`
	GainLoss           float64 `json:"gainLoss"`
	GainLossPercentage float64 `json:"gainLossPercentage"`
	InvestmentCount    int     `json:"investmentCount"`
}

func breakdownForSnapshot(breakdown []domain.TypeBreakdown) []snapshotBreakdown {
	out := make([]snapshotBreakdown, 0, len(breakdown))
	for _, b := range breakdown {
		out = append(out, snapshotBreakdown{
			InvestmentType:     string(b.InvestmentType),
			Currency:           b.Currency.String(),
			TotalValue:         b.TotalValue.InexactFloat64(),
			TotalInvested:      b.TotalInvested.InexactFloat64(),
			GainLoss:           b.GainLoss.InexactFloat64(),
			GainLossPercentage: b.GainLossPercentage.InexactFloat64(),
			InvestmentCount:    b.InvestmentCount,
		})
	}
	return out
}

// computeTopInvestments ranks positions by value in the reporting currency
// and records each one's weight against the whole portfolio.
func computeTopInvestments(
	positions []domain.Position,
	reportingCurrency domain.CurrencyCode,
	rates domain.ExchangeRateTable,
) ([]topInvestment, error) {
	values := make([]float64, 0, len(positions))
	ranked := make([]topInvestment, 0, len(positions))
	for _, p := range positions {
		value := internal.Convert(p.TotalValue(), p.SourceCurrency, reportingCurrency, rates).InexactFloat64()
		values = append(values, value)
		ranked = append(ranked, topInvestment{
			Symbol: p.Symbol,
			Name:   p.Name,
			Value:  value,
		})
	}
	if len(ranked) == 0 {
		return []topInvestment{}, nil
	}

	total, err := stats.Sum(values)
	if err != nil {
		return nil, fmt.Errorf("failed to sum position values: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > topInvestmentsPerSnapshot {
		ranked = ranked[:topInvestmentsPerSnapshot]
	}
	for i := range ranked {
		if total > 0 {
			ranked[i].Weight = 100 * ranked[i].Value / total
		}
	}

	return ranked, nil
}
