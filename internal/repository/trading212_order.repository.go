package repository

import (
	"database/sql"
	"fmt"
	"time"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type Trading212OrderRepository interface {
	Upsert(tx *sql.Tx, o model.Trading212Order) (*model.Trading212Order, error)
	List(memberID uuid.UUID) ([]model.Trading212Order, error)
}

type trading212OrderRepositoryHandler struct {
	Db *sql.DB
}

func NewTrading212OrderRepository(db *sql.DB) Trading212OrderRepository {
	return trading212OrderRepositoryHandler{Db: db}
}

func (h trading212OrderRepositoryHandler) Upsert(tx *sql.Tx, o model.Trading212Order) (*model.Trading212Order, error) {
	o.CreatedAt = time.Now().UTC()
	query := table.Trading212Order.
		INSERT(table.Trading212Order.MutableColumns).
		MODEL(o).
		ON_CONFLICT(table.Trading212Order.ExternalOrderID).DO_UPDATE(
		postgres.SET(
			table.Trading212Order.Status.SET(table.Trading212Order.EXCLUDED.Status),
			table.Trading212Order.FilledQuantity.SET(table.Trading212Order.EXCLUDED.FilledQuantity),
			table.Trading212Order.FillPrice.SET(table.Trading212Order.EXCLUDED.FillPrice),
			table.Trading212Order.FilledValue.SET(table.Trading212Order.EXCLUDED.FilledValue),
			table.Trading212Order.ExecutedAt.SET(table.Trading212Order.EXCLUDED.ExecutedAt),
		),
	).RETURNING(table.Trading212Order.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Trading212Order{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert trading212 order %s: %w", o.ExternalOrderID, err)
	}

	return &out, nil
}

func (h trading212OrderRepositoryHandler) List(memberID uuid.UUID) ([]model.Trading212Order, error) {
	query := table.Trading212Order.
		SELECT(table.Trading212Order.AllColumns).
		WHERE(table.Trading212Order.MemberID.EQ(postgres.UUID(memberID))).
		ORDER_BY(table.Trading212Order.ExecutedAt.DESC())

	result := []model.Trading212Order{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading212 orders: %w", err)
	}

	return result, nil
}
