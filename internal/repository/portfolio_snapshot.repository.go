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

type PortfolioSnapshotListFilter struct {
	HouseholdID *uuid.UUID
	MemberID    *uuid.UUID
	Since       *time.Time
}

type PortfolioSnapshotRepository interface {
	Add(tx *sql.Tx, s model.PortfolioSnapshot) (*model.PortfolioSnapshot, error)
	List(filter PortfolioSnapshotListFilter) ([]model.PortfolioSnapshot, error)
	GetLatest(householdID uuid.UUID) (*model.PortfolioSnapshot, error)
}

type portfolioSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioSnapshotRepository(db *sql.DB) PortfolioSnapshotRepository {
	return portfolioSnapshotRepositoryHandler{Db: db}
}

func (h portfolioSnapshotRepositoryHandler) Add(tx *sql.Tx, s model.PortfolioSnapshot) (*model.PortfolioSnapshot, error) {
	s.CreatedAt = time.Now().UTC()
	query := table.PortfolioSnapshot.
		INSERT(table.PortfolioSnapshot.MutableColumns).
		MODEL(s).
		RETURNING(table.PortfolioSnapshot.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.PortfolioSnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio snapshot: %w", err)
	}

	return &out, nil
}

func (h portfolioSnapshotRepositoryHandler) List(filter PortfolioSnapshotListFilter) ([]model.PortfolioSnapshot, error) {
	query := table.PortfolioSnapshot.
		SELECT(table.PortfolioSnapshot.AllColumns).
		ORDER_BY(table.PortfolioSnapshot.SnapshotDate.DESC())

	whereClauses := []postgres.BoolExpression{}
	if filter.HouseholdID != nil {
		whereClauses = append(whereClauses,
			table.PortfolioSnapshot.HouseholdID.EQ(postgres.UUID(*filter.HouseholdID)),
		)
	}
	if filter.MemberID != nil {
		whereClauses = append(whereClauses,
			table.PortfolioSnapshot.MemberID.EQ(postgres.UUID(*filter.MemberID)),
		)
	}
	if filter.Since != nil {
		whereClauses = append(whereClauses,
			table.PortfolioSnapshot.SnapshotDate.GT_EQ(postgres.TimestampzT(*filter.Since)),
		)
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.PortfolioSnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio snapshots: %w", err)
	}

	return result, nil
}

func (h portfolioSnapshotRepositoryHandler) GetLatest(householdID uuid.UUID) (*model.PortfolioSnapshot, error) {
	query := table.PortfolioSnapshot.
		SELECT(table.PortfolioSnapshot.AllColumns).
		WHERE(postgres.AND(
			table.PortfolioSnapshot.HouseholdID.EQ(postgres.UUID(householdID)),
			table.PortfolioSnapshot.MemberID.IS_NULL(),
		)).
		ORDER_BY(table.PortfolioSnapshot.SnapshotDate.DESC()).
		LIMIT(1)

	result := model.PortfolioSnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest portfolio snapshot: %w", err)
	}

	return &result, nil
}
