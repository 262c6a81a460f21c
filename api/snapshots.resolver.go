package api

import (
	"encoding/json"
	"time"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type snapshotResponse struct {
	SnapshotID         uuid.UUID       `json:"snapshotID"`
	MemberID           *uuid.UUID      `json:"memberID"`
	ReportingCurrency  string          `json:"reportingCurrency"`
	TotalValue         float64         `json:"totalValue"`
	TotalInvested      float64         `json:"totalInvested"`
	TotalGainLoss      float64         `json:"totalGainLoss"`
	GainLossPercentage float64         `json:"gainLossPercentage"`
	InvestmentCount    int32           `json:"investmentCount"`
	TypeBreakdown      json.RawMessage `json:"typeBreakdown,omitempty"`
	TopInvestments     json.RawMessage `json:"topInvestments,omitempty"`
	SnapshotDate       string          `json:"snapshotDate"`
}

func (m ApiHandler) captureSnapshot(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshot, err := m.SnapshotService.CaptureSnapshot(c, householdID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshotResponseFromModel(*snapshot))
}

func (m ApiHandler) listSnapshots(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	filter := repository.PortfolioSnapshotListFilter{HouseholdID: &householdID}
	if memberIDStr := c.Query("memberID"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.MemberID = &memberID
	}
	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := time.Parse(time.DateOnly, sinceStr)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.Since = &since
	}

	snapshots, err := m.PortfolioSnapshotRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []snapshotResponse{}
	for _, s := range snapshots {
		out = append(out, snapshotResponseFromModel(s))
	}

	c.JSON(200, gin.H{"snapshots": out})
}

func snapshotResponseFromModel(s model.PortfolioSnapshot) snapshotResponse {
	out := snapshotResponse{
		SnapshotID:         s.PortfolioSnapshotID,
		MemberID:           s.MemberID,
		ReportingCurrency:  s.ReportingCurrency,
		TotalValue:         s.TotalValue,
		TotalInvested:      s.TotalInvested,
		TotalGainLoss:      s.TotalGainLoss,
		GainLossPercentage: s.GainLossPercentage,
		InvestmentCount:    s.InvestmentCount,
		SnapshotDate:       s.SnapshotDate.Format(time.RFC3339),
	}
	if s.TypeBreakdown != nil {
		out.TypeBreakdown = json.RawMessage(*s.TypeBreakdown)
	}
	if s.TopInvestments != nil {
		out.TopInvestments = json.RawMessage(*s.TopInvestments)
	}
	return out
}
