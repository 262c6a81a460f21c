package app

import (
	"context"
	"fmt"
	"testing"

	"nestegg/internal"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/domain"
	"nestegg/internal/repository"
	mock_repository "nestegg/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticRateService struct{}

func (staticRateService) GetRates(ctx context.Context) domain.ExchangeRateTable {
	return domain.FallbackRates()
}

func TestComputeSummary(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()

	household := &model.Household{
		HouseholdID:     householdID,
		Name:            "Sharma Family",
		DefaultCurrency: "INR",
	}
	members := []model.Member{
		{MemberID: aliceID, HouseholdID: householdID, Name: "Alice"},
		{MemberID: bobID, HouseholdID: householdID, Name: "Bob"},
	}

	t.Run("aggregates normalized positions in the household default currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		householdRepository := mock_repository.NewMockHouseholdRepository(ctrl)
		memberRepository := mock_repository.NewMockMemberRepository(ctrl)
		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		service := NewPortfolioService(householdRepository, memberRepository, investmentRepository, staticRateService{}, internal.NewNormalizer(nil))

		householdRepository.EXPECT().Get(householdID).Return(household, nil)
		memberRepository.EXPECT().List(householdID).Return(members, nil)
		investmentRepository.EXPECT().
			List(repository.InvestmentListFilter{HouseholdID: &householdID}).
			Return([]model.Investment{
				{
					MemberID:       aliceID,
					HouseholdID:    householdID,
					Symbol:         "VWRP_EQ",
					Name:           "Vanguard FTSE All-World",
					InvestmentType: model.InvestmentType_Isa,
					Quantity:       10,
					AveragePrice:   8550, // pence
					CurrentPrice:   floatPtr(9010),
					Currency:       "GBX",
					SourceSystem:   model.SourceSystem_Trading212,
				},
				{
					MemberID:       bobID,
					HouseholdID:    householdID,
					Symbol:         "PARA_PARI_FLEX",
					Name:           "Parag Parikh Flexi Cap Fund",
					InvestmentType: model.InvestmentType_MutualFund,
					Quantity:       100,
					AveragePrice:   60,
					CurrentPrice:   floatPtr(75),
					Currency:       "INR",
					SourceSystem:   model.SourceSystem_Tickertape,
				},
			}, nil)

		summary, err := service.ComputeSummary(ctx, ComputeSummaryInput{HouseholdID: householdID})
		require.NoError(t, err)

		require.Equal(t, domain.CurrencyINR, summary.ReportingCurrency)
		require.Equal(t, 2, summary.InvestmentCount)
		require.Len(t, summary.Members, 2)
		require.Equal(t, "Alice", summary.Members[0].MemberName)
		require.Equal(t, 1, summary.Members[0].InvestmentCount)
		require.Equal(t, 1, summary.Members[1].InvestmentCount)

		// the pence-priced ISA converts through GBP: 901 GBP -> 94662.03 INR
		require.Equal(t, "94662.03", summary.Members[0].TotalValue.String())
		// the INR fund needs no conversion
		require.Equal(t, "7500", summary.Members[1].TotalValue.String())
	})

	t.Run("explicit reporting currency overrides the household default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		householdRepository := mock_repository.NewMockHouseholdRepository(ctrl)
		memberRepository := mock_repository.NewMockMemberRepository(ctrl)
		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		service := NewPortfolioService(householdRepository, memberRepository, investmentRepository, staticRateService{}, internal.NewNormalizer(nil))

		householdRepository.EXPECT().Get(householdID).Return(household, nil)
		memberRepository.EXPECT().List(householdID).Return(members, nil)
		investmentRepository.EXPECT().List(gomock.Any()).Return([]model.Investment{}, nil)

		summary, err := service.ComputeSummary(ctx, ComputeSummaryInput{
			HouseholdID:       householdID,
			ReportingCurrency: "usd",
		})
		require.NoError(t, err)
		require.Equal(t, domain.CurrencyUSD, summary.ReportingCurrency)
	})

	t.Run("member filter is passed through to the investment query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		householdRepository := mock_repository.NewMockHouseholdRepository(ctrl)
		memberRepository := mock_repository.NewMockMemberRepository(ctrl)
		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		service := NewPortfolioService(householdRepository, memberRepository, investmentRepository, staticRateService{}, internal.NewNormalizer(nil))

		householdRepository.EXPECT().Get(householdID).Return(household, nil)
		memberRepository.EXPECT().List(householdID).Return(members, nil)
		investmentRepository.EXPECT().
			List(repository.InvestmentListFilter{HouseholdID: &householdID, MemberID: &aliceID}).
			Return([]model.Investment{}, nil)

		_, err := service.ComputeSummary(ctx, ComputeSummaryInput{
			HouseholdID: householdID,
			MemberID:    &aliceID,
		})
		require.NoError(t, err)
	})

	t.Run("minor unit reporting currency is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		householdRepository := mock_repository.NewMockHouseholdRepository(ctrl)
		memberRepository := mock_repository.NewMockMemberRepository(ctrl)
		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		service := NewPortfolioService(householdRepository, memberRepository, investmentRepository, staticRateService{}, internal.NewNormalizer(nil))

		householdRepository.EXPECT().Get(householdID).Return(household, nil)

		_, err := service.ComputeSummary(ctx, ComputeSummaryInput{
			HouseholdID:       householdID,
			ReportingCurrency: "GBX",
		})
		require.ErrorContains(t, err, "minor unit")
	})

	t.Run("household load failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		householdRepository := mock_repository.NewMockHouseholdRepository(ctrl)
		memberRepository := mock_repository.NewMockMemberRepository(ctrl)
		investmentRepository := mock_repository.NewMockInvestmentRepository(ctrl)
		service := NewPortfolioService(householdRepository, memberRepository, investmentRepository, staticRateService{}, internal.NewNormalizer(nil))

		householdRepository.EXPECT().Get(householdID).Return(nil, fmt.Errorf("sql: no rows in result set"))

		_, err := service.ComputeSummary(ctx, ComputeSummaryInput{HouseholdID: householdID})
		require.ErrorContains(t, err, "failed to load household")
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
