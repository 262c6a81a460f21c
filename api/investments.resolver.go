package api

import (
	"fmt"
	"time"

	"nestegg/internal"
	"nestegg/internal/app"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"
	"nestegg/internal/domain"
	"nestegg/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type investmentResponse struct {
	InvestmentID   uuid.UUID `json:"investmentID"`
	MemberID       uuid.UUID `json:"memberID"`
	Symbol         string    `json:"symbol"`
	Name           string    `json:"name"`
	InvestmentType string    `json:"investmentType"`
	Quantity       float64   `json:"quantity"`
	AveragePrice   float64   `json:"averagePrice"`
	CurrentPrice   *float64  `json:"currentPrice"`
	TotalValue     *float64  `json:"totalValue"`
	Currency       string    `json:"currency"`
	SourceSystem   string    `json:"sourceSystem"`
	SourceCountry  *string   `json:"sourceCountry"`
	UpdatedAt      string    `json:"updatedAt"`
}

func (m ApiHandler) listInvestments(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	filter := repository.InvestmentListFilter{HouseholdID: &householdID}
	if memberIDStr := c.Query("memberID"); memberIDStr != "" {
		memberID, err := uuid.Parse(memberIDStr)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.MemberID = &memberID
	}

	investments, err := m.InvestmentRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []investmentResponse{}
	for _, iv := range investments {
		out = append(out, investmentResponseFromModel(iv))
	}

	c.JSON(200, gin.H{"investments": out})
}

type addInvestmentRequest struct {
	MemberID       string   `json:"memberID"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	InvestmentType string   `json:"investmentType"`
	Quantity       float64  `json:"quantity"`
	AveragePrice   float64  `json:"averagePrice"`
	CurrentPrice   *float64 `json:"currentPrice"`
	Currency       string   `json:"currency"`
	SourceCountry  *string  `json:"sourceCountry"`
}

func (m ApiHandler) addInvestment(c *gin.Context) {
	householdID, err := uuid.Parse(c.Param("householdID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody addInvestmentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	memberID, err := uuid.Parse(requestBody.MemberID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid member id: %w", err), c, 400)
		return
	}
	member, err := m.MemberRepository.Get(memberID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unknown member: %w", err), c, 400)
		return
	}
	if member.HouseholdID != householdID {
		returnErrorJsonCode(fmt.Errorf("member does not belong to household"), c, 400)
		return
	}

	iv, err := investmentModelFromRequest(householdID, memberID, requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	existing, err := m.InvestmentRepository.List(repository.InvestmentListFilter{MemberID: &memberID})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	for _, e := range existing {
		if e.Symbol == iv.Symbol && e.InvestmentType == iv.InvestmentType {
			returnErrorJsonCode(fmt.Errorf("member already holds %s as %s", iv.Symbol, iv.InvestmentType), c, 409)
			return
		}
	}

	created, err := m.InvestmentRepository.Add(nil, iv)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, investmentResponseFromModel(*created))
}

type updateInvestmentRequest struct {
	Name         *string  `json:"name"`
	Quantity     *float64 `json:"quantity"`
	AveragePrice *float64 `json:"averagePrice"`
	CurrentPrice *float64 `json:"currentPrice"`
	Currency     *string  `json:"currency"`
}

func (m ApiHandler) updateInvestment(c *gin.Context) {
	investmentID, err := uuid.Parse(c.Param("investmentID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody updateInvestmentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	iv, err := m.InvestmentRepository.Get(investmentID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unknown investment: %w", err), c, 404)
		return
	}

	columns := postgres.ColumnList{}
	if requestBody.Name != nil {
		iv.Name = *requestBody.Name
		columns = append(columns, table.Investment.Name)
	}
	if requestBody.Quantity != nil {
		if *requestBody.Quantity < 0 {
			returnErrorJsonCode(fmt.Errorf("quantity must be non-negative"), c, 400)
			return
		}
		iv.Quantity = *requestBody.Quantity
		columns = append(columns, table.Investment.Quantity)
	}
	if requestBody.AveragePrice != nil {
		if *requestBody.AveragePrice < 0 {
			returnErrorJsonCode(fmt.Errorf("average price must be non-negative"), c, 400)
			return
		}
		iv.AveragePrice = *requestBody.AveragePrice
		columns = append(columns, table.Investment.AveragePrice)
	}
	if requestBody.CurrentPrice != nil {
		if *requestBody.CurrentPrice < 0 {
			returnErrorJsonCode(fmt.Errorf("current price must be non-negative"), c, 400)
			return
		}
		iv.CurrentPrice = requestBody.CurrentPrice
		columns = append(columns, table.Investment.CurrentPrice)
	}
	if requestBody.Currency != nil {
		currency, err := domain.NewCurrencyCode(*requestBody.Currency)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		iv.Currency = currency.String()
		columns = append(columns, table.Investment.Currency)
	}
	if len(columns) == 0 {
		returnErrorJsonCode(fmt.Errorf("no fields to update"), c, 400)
		return
	}

	totalValue := iv.Quantity * effectivePrice(*iv)
	iv.TotalValue = &totalValue
	columns = append(columns, table.Investment.TotalValue)

	updated, err := m.InvestmentRepository.Update(nil, *iv, columns)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, investmentResponseFromModel(*updated))
}

func (m ApiHandler) deleteInvestment(c *gin.Context) {
	investmentID, err := uuid.Parse(c.Param("investmentID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.InvestmentRepository.Delete(nil, investmentID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}

// clearInvestments wipes a member's positions, optionally restricted to one
// source system via the ?source= query param.
func (m ApiHandler) clearInvestments(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("memberID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if sourceStr := c.Query("source"); sourceStr != "" {
		source := model.SourceSystem(sourceStr)
		if err := m.InvestmentRepository.DeleteBySource(nil, memberID, source); err != nil {
			returnErrorJson(err, c)
			return
		}
	} else if err := m.InvestmentRepository.DeleteAll(nil, memberID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}

func investmentModelFromRequest(householdID, memberID uuid.UUID, req addInvestmentRequest) (model.Investment, error) {
	if req.Symbol == "" && req.Name == "" {
		return model.Investment{}, fmt.Errorf("investment needs a symbol or a name")
	}
	if req.Quantity < 0 {
		return model.Investment{}, fmt.Errorf("quantity must be non-negative")
	}
	if req.AveragePrice < 0 {
		return model.Investment{}, fmt.Errorf("average price must be non-negative")
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		return model.Investment{}, fmt.Errorf("current price must be non-negative")
	}

	currency, err := domain.NewCurrencyCode(req.Currency)
	if err != nil {
		return model.Investment{}, err
	}

	symbol := req.Symbol
	if symbol == "" {
		symbol = app.SymbolFromFundName(req.Name)
	}
	name := req.Name
	if name == "" {
		name = symbol
	}

	iv := model.Investment{
		HouseholdID:    householdID,
		MemberID:       memberID,
		Symbol:         symbol,
		Name:           name,
		InvestmentType: model.InvestmentType(internal.ResolveInvestmentType(req.InvestmentType, name, symbol)),
		Quantity:       req.Quantity,
		AveragePrice:   req.AveragePrice,
		CurrentPrice:   req.CurrentPrice,
		Currency:       currency.String(),
		SourceSystem:   model.SourceSystem_Manual,
		SourceCountry:  req.SourceCountry,
	}
	totalValue := iv.Quantity * effectivePrice(iv)
	iv.TotalValue = &totalValue

	return iv, nil
}

func effectivePrice(iv model.Investment) float64 {
	if iv.CurrentPrice != nil {
		return *iv.CurrentPrice
	}
	return iv.AveragePrice
}

func investmentResponseFromModel(iv model.Investment) investmentResponse {
	return investmentResponse{
		InvestmentID:   iv.InvestmentID,
		MemberID:       iv.MemberID,
		Symbol:         iv.Symbol,
		Name:           iv.Name,
		InvestmentType: iv.InvestmentType.String(),
		Quantity:       iv.Quantity,
		AveragePrice:   iv.AveragePrice,
		CurrentPrice:   iv.CurrentPrice,
		TotalValue:     iv.TotalValue,
		Currency:       iv.Currency,
		SourceSystem:   iv.SourceSystem.String(),
		SourceCountry:  iv.SourceCountry,
		UpdatedAt:      iv.UpdatedAt.Format(time.RFC3339),
	}
}
