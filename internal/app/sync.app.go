package app

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"nestegg/internal/util"

	"github.com/google/uuid"
)

type SyncResult struct {
	PositionsSynced int
	OrdersStored    int
}

type Trading212SyncService interface {
	Sync(ctx context.Context, householdID, memberID uuid.UUID) (*SyncResult, error)
}

type trading212SyncServiceHandler struct {
	Db                        *sql.DB
	Trading212Repository      repository.Trading212Repository
	InvestmentRepository      repository.InvestmentRepository
	Trading212OrderRepository repository.Trading212OrderRepository
	StockSymbolRepository     repository.StockSymbolRepository
}

func NewTrading212SyncService(
	db *sql.DB,
	trading212Repository repository.Trading212Repository,
	investmentRepository repository.InvestmentRepository,
	trading212OrderRepository repository.Trading212OrderRepository,
	stockSymbolRepository repository.StockSymbolRepository,
) Trading212SyncService {
	return trading212SyncServiceHandler{
		Db:                        db,
		Trading212Repository:      trading212Repository,
		InvestmentRepository:      investmentRepository,
		Trading212OrderRepository: trading212OrderRepository,
		StockSymbolRepository:     stockSymbolRepository,
	}
}

// Sync replaces the member's broker-sourced positions with a fresh snapshot
// computed from Trading212 order history, falling back to the broker's own
// portfolio endpoint when history is unavailable. Manually entered positions
// are untouched.
func (h trading212SyncServiceHandler) Sync(ctx context.Context, householdID, memberID uuid.UUID) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	instruments, err := h.Trading212Repository.GetInstruments(ctx)
	if err != nil {
		// degraded but workable - tickers stand in for names
		log.Warnf("failed to fetch trading212 instruments, using tickers as names: %v", err)
		instruments = map[string]repository.Trading212Instrument{}
	}

	orders, err := h.Trading212Repository.GetHistoricalOrders(ctx)
	if err != nil {
		log.Warnf("failed to fetch trading212 order history, falling back to portfolio endpoint: %v", err)
		return h.syncFromPortfolio(ctx, householdID, memberID, instruments)
	}

	positions := netPositionsFromOrders(ctx, orders)

	investments := make([]model.Investment, 0, len(positions))
	for _, p := range positions {
		investments = append(investments, h.investmentFromNetPosition(householdID, memberID, p, instruments))
	}

	if err := h.replaceBrokerPositions(memberID, investments); err != nil {
		return nil, err
	}

	ordersStored := 0
	for _, order := range orders {
		if order.Ticker == "" {
			continue
		}
		_, err := h.Trading212OrderRepository.Upsert(nil, orderModelFromHistoricalOrder(memberID, order, instruments))
		if err != nil {
			log.Warnf("failed to store trading212 order %d: %v", order.ID, err)
			continue
		}
		ordersStored++
	}

	log.Infow("trading212 sync complete", "positions", len(investments), "orders", ordersStored)

	return &SyncResult{
		PositionsSynced: len(investments),
		OrdersStored:    ordersStored,
	}, nil
}

func (h trading212SyncServiceHandler) syncFromPortfolio(
	ctx context.Context,
	householdID, memberID uuid.UUID,
	instruments map[string]repository.Trading212Instrument,
) (*SyncResult, error) {
	portfolio, err := h.Trading212Repository.GetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trading212 portfolio: %w", err)
	}

	investments := make([]model.Investment, 0, len(portfolio))
	for _, p := range portfolio {
		if p.Quantity <= 0 {
			continue
		}
		name, currency := instrumentDetails(p.Ticker, instruments)
		investments = append(investments, model.Investment{
			HouseholdID:    householdID,
			MemberID:       memberID,
			Symbol:         p.Ticker,
			Name:           name,
			InvestmentType: model.InvestmentType_Isa,
			Quantity:       p.Quantity,
			AveragePrice:   p.AveragePrice,
			CurrentPrice:   util.FloatPointer(p.CurrentPrice),
			TotalValue:     util.FloatPointer(p.Quantity * p.CurrentPrice),
			Currency:       currency,
			SourceSystem:   model.SourceSystem_Trading212,
			SourceCountry:  util.StringPointer("UK"),
		})
	}

	if err := h.replaceBrokerPositions(memberID, investments); err != nil {
		return nil, err
	}

	return &SyncResult{PositionsSynced: len(investments)}, nil
}

// replaceBrokerPositions swaps the member's trading212 rows inside one
// transaction so a failed sync never leaves a half-replaced portfolio.
func (h trading212SyncServiceHandler) replaceBrokerPositions(memberID uuid.UUID, investments []model.Investment) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin sync transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.InvestmentRepository.DeleteBySource(tx, memberID, model.SourceSystem_Trading212); err != nil {
		return err
	}
	for _, iv := range investments {
		if _, err := h.InvestmentRepository.Add(tx, iv); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sync transaction: %w", err)
	}
	return nil
}

type netPosition struct {
	Ticker        string
	TotalQuantity float64
	TotalInvested float64
	OrderCount    int
}

// netPositionsFromOrders folds filled orders into per-ticker net positions.
// Quantity is derived from filled value and fill price because the broker
// reports fractional fills inconsistently. Tickers that net to zero or
// negative are dropped - a sell recorded without its matching buy is stale
// history, not a short position.
func netPositionsFromOrders(ctx context.Context, orders []repository.Trading212HistoricalOrder) []netPosition {
	log := logger.FromContext(ctx)

	byTicker := map[string]*netPosition{}
	tickerOrder := []string{}
	for _, order := range orders {
		if order.Ticker == "" || order.Status != "FILLED" {
			continue
		}

		p, ok := byTicker[order.Ticker]
		if !ok {
			p = &netPosition{Ticker: order.Ticker}
			byTicker[order.Ticker] = p
			tickerOrder = append(tickerOrder, order.Ticker)
		}
		p.OrderCount++

		quantity := 0.0
		if order.FillPrice > 0 {
			quantity = order.FilledValue / order.FillPrice
		}

		switch {
		case isBuyOrder(order):
			p.TotalQuantity += quantity
			p.TotalInvested += order.FilledValue
		case order.FillType == "SELL" || order.Type == "SELL":
			p.TotalQuantity -= quantity
			p.TotalInvested -= order.FilledValue
		}
	}

	out := []netPosition{}
	for _, ticker := range tickerOrder {
		p := byTicker[ticker]
		if p.TotalQuantity <= 0 {
			if p.TotalQuantity < 0 {
				log.Warnf("dropping %s: orders net to negative quantity %f", p.Ticker, p.TotalQuantity)
			}
			continue
		}
		out = append(out, *p)
	}
	return out
}

func isBuyOrder(order repository.Trading212HistoricalOrder) bool {
	switch order.FillType {
	case "BUY", "OTC", "MARKET":
		return true
	}
	switch order.Type {
	case "BUY", "MARKET":
		return true
	}
	return false
}

func (h trading212SyncServiceHandler) investmentFromNetPosition(
	householdID, memberID uuid.UUID,
	p netPosition,
	instruments map[string]repository.Trading212Instrument,
) model.Investment {
	name, currency := instrumentDetails(p.Ticker, instruments)
	averagePrice := p.TotalInvested / p.TotalQuantity
	return model.Investment{
		HouseholdID:    householdID,
		MemberID:       memberID,
		Symbol:         p.Ticker,
		Name:           name,
		InvestmentType: model.InvestmentType_Isa,
		Quantity:       p.TotalQuantity,
		AveragePrice:   averagePrice,
		TotalValue:     util.FloatPointer(p.TotalQuantity * averagePrice),
		Currency:       currency,
		SourceSystem:   model.SourceSystem_Trading212,
		SourceCountry:  util.StringPointer("UK"),
	}
}

func instrumentDetails(ticker string, instruments map[string]repository.Trading212Instrument) (name string, currency string) {
	name = ticker
	currency = "USD"
	if instrument, ok := instruments[ticker]; ok {
		if instrument.Name != "" {
			name = instrument.Name
		}
		if instrument.CurrencyCode != "" {
			currency = instrument.CurrencyCode
		}
	}
	return name, currency
}

func orderModelFromHistoricalOrder(
	memberID uuid.UUID,
	order repository.Trading212HistoricalOrder,
	instruments map[string]repository.Trading212Instrument,
) model.Trading212Order {
	_, currency := instrumentDetails(order.Ticker, instruments)
	return model.Trading212Order{
		MemberID:        memberID,
		ExternalOrderID: strconv.FormatInt(order.ID, 10),
		Ticker:          order.Ticker,
		OrderType:       mapOrderType(order.Type),
		FillType:        util.StringPointer(order.FillType),
		FilledQuantity:  order.FilledQuantity,
		FillPrice:       util.FloatPointer(order.FillPrice),
		FilledValue:     util.FloatPointer(order.FilledValue),
		Status:          mapOrderStatus(order.Status),
		Currency:        currency,
		ExecutedAt:      order.DateExecuted,
	}
}

func mapOrderType(apiType string) string {
	switch apiType {
	case "BUY", "SELL", "DIVIDEND", "DIVIDEND_REINVESTMENT":
		return apiType
	}
	return "OTHER"
}

func mapOrderStatus(apiStatus string) string {
	switch apiStatus {
	case "PENDING", "FILLED", "PARTIALLY_FILLED", "CANCELLED", "REJECTED":
		return apiStatus
	}
	return "OTHER"
}
