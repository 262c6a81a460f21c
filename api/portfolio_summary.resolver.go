package api

import (
	"nestegg/internal/app"
	"nestegg/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type typeBreakdownResponse struct {
	InvestmentType     string  `json:"investmentType"`
	Currency           string  `json:"currency"`
	TotalValue         float64 `json:"totalValue"`
	TotalInvested      float64 `json:"totalInvested"`
	GainLoss           float64 `json:"gainLoss"`
	GainLossPercentage float64 `json:"gainLossPercentage"`
	InvestmentCount    int     `json:"investmentCount"`
}

type memberSummaryResponse struct {
	MemberID           uuid.UUID               `json:"memberID"`
	MemberName         string                  `json:"memberName"`
	TotalValue         float64                 `json:"totalValue"`
	TotalInvested      float64                 `json:"totalInvested"`
	TotalGainLoss      float64                 `json:"totalGainLoss"`
	GainLossPercentage float64                 `json:"gainLossPercentage"`
	InvestmentCount    int                     `json:"investmentCount"`
	InvestmentWise     []typeBreakdownResponse `json:"investmentWise"`
}

type portfolioSummaryResponse struct {
	ReportingCurrency  string                  `json:"reportingCurrency"`
	TotalValue         float64                 `json:"totalValue"`
	TotalInvested      float64                 `json:"totalInvested"`
	TotalGainLoss      float64                 `json:"totalGainLoss"`
	GainLossPercentage float64                 `json:"gainLossPercentage"`
	InvestmentCount    int                     `json:"investmentCount"`
	Members            []memberSummaryResponse `json:"members"`
	InvestmentWise     []typeBreakdownResponse `json:"investmentWise"`
}

func (m ApiHandler) getPortfolioSummary(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in := app.ComputeSummaryInput{
		HouseholdID:       householdID,
		ReportingCurrency: c.Query("currency"),
	}
	if memberIDStr := c.Query("memberID"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		in.MemberID = &memberID
	}

	summary, err := m.PortfolioService.ComputeSummary(c, in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioSummaryResponseFromDomain(*summary))
}

func portfolioSummaryResponseFromDomain(summary domain.PortfolioSummary) portfolioSummaryResponse {
	members := []memberSummaryResponse{}
	for _, member := range summary.Members {
		members = append(members, memberSummaryResponse{
			MemberID:           member.MemberID,
			MemberName:         member.MemberName,
			TotalValue:         member.TotalValue.InexactFloat64(),
			TotalInvested:      member.TotalInvested.InexactFloat64(),
			TotalGainLoss:      member.TotalGainLoss.InexactFloat64(),
			GainLossPercentage: member.GainLossPercentage.InexactFloat64(),
			InvestmentCount:    member.InvestmentCount,
			InvestmentWise:     breakdownResponseFromDomain(member.InvestmentWise),
		})
	}

	return portfolioSummaryResponse{
		ReportingCurrency:  summary.ReportingCurrency.String(),
		TotalValue:         summary.TotalValue.InexactFloat64(),
		TotalInvested:      summary.TotalInvested.InexactFloat64(),
		TotalGainLoss:      summary.TotalGainLoss.InexactFloat64(),
		GainLossPercentage: summary.GainLossPercentage.InexactFloat64(),
		InvestmentCount:    summary.InvestmentCount,
		Members:            members,
		InvestmentWise:     breakdownResponseFromDomain(summary.InvestmentWise),
	}
}

func breakdownResponseFromDomain(breakdowns []domain.TypeBreakdown) []typeBreakdownResponse {
	out := []typeBreakdownResponse{}
	for _, b := range breakdowns {
		out = append(out, typeBreakdownResponse{
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
