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

type InvestmentListFilter struct {
	HouseholdID   *uuid.UUID
	MemberID      *uuid.UUID
	SourceSystems []model.SourceSystem
}

type InvestmentRepository interface {
	Add(tx *sql.Tx, iv model.Investment) (*model.Investment, error)
	Get(id uuid.UUID) (*model.Investment, error)
	List(filter InvestmentListFilter) ([]model.Investment, error)
	Update(tx *sql.Tx, iv model.Investment, columns postgres.ColumnList) (*model.Investment, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
	DeleteBySource(tx *sql.Tx, memberID uuid.UUID, source model.SourceSystem) error
	DeleteAll(tx *sql.Tx, memberID uuid.UUID) error
}

type investmentRepositoryHandler struct {
	Db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) InvestmentRepository {
	return investmentRepositoryHandler{Db: db}
}

func (h investmentRepositoryHandler) Add(tx *sql.Tx, iv model.Investment) (*model.Investment, error) {
	iv.CreatedAt = time.Now().UTC()
	iv.UpdatedAt = time.Now().UTC()
	query := table.Investment.
		INSERT(table.Investment.MutableColumns).
		MODEL(iv).
		RETURNING(table.Investment.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Investment{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert investment: %w", err)
	}

	return &out, nil
}

func (h investmentRepositoryHandler) Get(id uuid.UUID) (*model.Investment, error) {
	query := table.Investment.
		SELECT(table.Investment.AllColumns).
		WHERE(table.Investment.InvestmentID.EQ(postgres.UUID(id)))

	result := model.Investment{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}

	return &result, nil
}

func (h investmentRepositoryHandler) List(filter InvestmentListFilter) ([]model.Investment, error) {
	query := table.Investment.
		SELECT(table.Investment.AllColumns).
		ORDER_BY(table.Investment.CreatedAt.DESC())

	whereClauses := []postgres.BoolExpression{}
	if filter.HouseholdID != nil {
		whereClauses = append(whereClauses,
			table.Investment.HouseholdID.EQ(postgres.UUID(*filter.HouseholdID)),
		)
	}
	if filter.MemberID != nil {
		whereClauses = append(whereClauses,
			table.Investment.MemberID.EQ(postgres.UUID(*filter.MemberID)),
		)
	}
	if len(filter.SourceSystems) > 0 {
		sources := []postgres.Expression{}
		for _, s := range filter.SourceSystems {
			sources = append(sources, postgres.String(s.String()))
		}
		whereClauses = append(whereClauses,
			table.Investment.SourceSystem.IN(sources...),
		)
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Investment{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return result, nil
}

func (h investmentRepositoryHandler) Update(tx *sql.Tx, iv model.Investment, columns postgres.ColumnList) (*model.Investment, error) {
	iv.UpdatedAt = time.Now().UTC()
	columns = append(columns, table.Investment.UpdatedAt)
	query := table.Investment.
		UPDATE(columns).
		MODEL(iv).
		WHERE(table.Investment.InvestmentID.EQ(postgres.UUID(iv.InvestmentID))).
		RETURNING(table.Investment.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Investment{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update investment %s: %w", iv.InvestmentID.String(), err)
	}

	return &out, nil
}

func (h investmentRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	query := table.Investment.
		DELETE().
		WHERE(table.Investment.InvestmentID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", id.String(), err)
	}

	return nil
}

func (h investmentRepositoryHandler) DeleteBySource(tx *sql.Tx, memberID uuid.UUID, source model.SourceSystem) error {
	query := table.Investment.
		DELETE().
		WHERE(postgres.AND(
			table.Investment.MemberID.EQ(postgres.UUID(memberID)),
			table.Investment.SourceSystem.EQ(postgres.String(source.String())),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete %s investments for member %s: %w", source.String(), memberID.String(), err)
	}

	return nil
}

func (h investmentRepositoryHandler) DeleteAll(tx *sql.Tx, memberID uuid.UUID) error {
	query := table.Investment.
		DELETE().
		WHERE(table.Investment.MemberID.EQ(postgres.UUID(memberID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete investments for member %s: %w", memberID.String(), err)
	}

	return nil
}
