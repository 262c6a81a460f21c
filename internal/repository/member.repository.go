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

type MemberRepository interface {
	Add(tx *sql.Tx, m model.Member) (*model.Member, error)
	Get(id uuid.UUID) (*model.Member, error)
	List(householdID uuid.UUID) ([]model.Member, error)
}

type memberRepositoryHandler struct {
	Db *sql.DB
}

func NewMemberRepository(db *sql.DB) MemberRepository {
	return memberRepositoryHandler{Db: db}
}

func (h memberRepositoryHandler) Add(tx *sql.Tx, m model.Member) (*model.Member, error) {
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = time.Now().UTC()
	query := table.Member.
		INSERT(table.Member.MutableColumns).
		MODEL(m).
		RETURNING(table.Member.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Member{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}

	return &out, nil
}

func (h memberRepositoryHandler) Get(id uuid.UUID) (*model.Member, error) {
	query := table.Member.
		SELECT(table.Member.AllColumns).
		WHERE(table.Member.MemberID.EQ(postgres.UUID(id)))

	result := model.Member{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &result, nil
}

func (h memberRepositoryHandler) List(householdID uuid.UUID) ([]model.Member, error) {
	query := table.Member.
		SELECT(table.Member.AllColumns).
		WHERE(table.Member.HouseholdID.EQ(postgres.UUID(householdID))).
		ORDER_BY(table.Member.CreatedAt.ASC())

	result := []model.Member{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return result, nil
}
