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

type HouseholdRepository interface {
	Add(tx *sql.Tx, hh model.Household) (*model.Household, error)
	Get(id uuid.UUID) (*model.Household, error)
}

type householdRepositoryHandler struct {
	Db *sql.DB
}

func NewHouseholdRepository(db *sql.DB) HouseholdRepository {
	return householdRepositoryHandler{Db: db}
}

func (h householdRepositoryHandler) Add(tx *sql.Tx, hh model.Household) (*model.Household, error) {
	hh.CreatedAt = time.Now().UTC()
	hh.UpdatedAt = time.Now().UTC()
	query := table.Household.
		INSERT(table.Household.MutableColumns).
		MODEL(hh).
		RETURNING(table.Household.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Household{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert household: %w", err)
	}

	return &out, nil
}

func (h householdRepositoryHandler) Get(id uuid.UUID) (*model.Household, error) {
	query := table.Household.
		SELECT(table.Household.AllColumns).
		WHERE(table.Household.HouseholdID.EQ(postgres.UUID(id)))

	result := model.Household{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	return &result, nil
}
