package repository

import (
	"database/sql"
	"fmt"
	"time"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type StockSymbolRepository interface {
	GetByTicker(ticker string) (*model.StockSymbol, error)
	List() ([]model.StockSymbol, error)
	Upsert(tx *sql.Tx, s model.StockSymbol) (*model.StockSymbol, error)
}

type stockSymbolRepositoryHandler struct {
	Db *sql.DB
}

func NewStockSymbolRepository(db *sql.DB) StockSymbolRepository {
	return stockSymbolRepositoryHandler{Db: db}
}

func (h stockSymbolRepositoryHandler) GetByTicker(ticker string) (*model.StockSymbol, error) {
	query := table.StockSymbol.
		SELECT(table.StockSymbol.AllColumns).
		WHERE(table.StockSymbol.Ticker.EQ(postgres.String(ticker)))

	result := model.StockSymbol{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock symbol %s: %w", ticker, err)
	}

	return &result, nil
}

func (h stockSymbolRepositoryHandler) List() ([]model.StockSymbol, error) {
	query := table.StockSymbol.
		SELECT(table.StockSymbol.AllColumns).
		ORDER_BY(table.StockSymbol.Ticker.ASC())

	result := []model.StockSymbol{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock symbols: %w", err)
	}

	return result, nil
}

func (h stockSymbolRepositoryHandler) Upsert(tx *sql.Tx, s model.StockSymbol) (*model.StockSymbol, error) {
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = time.Now().UTC()
	query := table.StockSymbol.
		INSERT(table.StockSymbol.MutableColumns).
		MODEL(s).
		ON_CONFLICT(table.StockSymbol.Ticker).DO_UPDATE(
		postgres.SET(
			table.StockSymbol.Name.SET(table.StockSymbol.EXCLUDED.Name),
			table.StockSymbol.ShortName.SET(table.StockSymbol.EXCLUDED.ShortName),
			table.StockSymbol.Isin.SET(table.StockSymbol.EXCLUDED.Isin),
			table.StockSymbol.Type.SET(table.StockSymbol.EXCLUDED.Type),
			table.StockSymbol.CurrencyCode.SET(table.StockSymbol.EXCLUDED.CurrencyCode),
			table.StockSymbol.UpdatedAt.SET(table.StockSymbol.EXCLUDED.UpdatedAt),
		),
	).RETURNING(table.StockSymbol.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.StockSymbol{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert stock symbol %s: %w", s.Ticker, err)
	}

	return &out, nil
}
