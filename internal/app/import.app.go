package app

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"nestegg/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type ImportResult struct {
	PositionsImported int
	RowsSkipped       int
}

type TickertapeImportService interface {
	ImportCSV(ctx context.Context, householdID, memberID uuid.UUID, file io.Reader) (*ImportResult, error)
}

type tickertapeImportServiceHandler struct {
	Db                   *sql.DB
	InvestmentRepository repository.InvestmentRepository
}

func NewTickertapeImportService(db *sql.DB, investmentRepository repository.InvestmentRepository) TickertapeImportService {
	return tickertapeImportServiceHandler{
		Db:                   db,
		InvestmentRepository: investmentRepository,
	}
}

// indianNumber parses numerics as Tickertape exports them, with grouping
// commas inside quoted cells ("1,23,456.78").
type indianNumber float64

func (n *indianNumber) UnmarshalCSV(csv string) error {
	cleaned := strings.ReplaceAll(strings.TrimSpace(csv), ",", "")
	if cleaned == "" {
		*n = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fmt.Errorf("failed to parse number %q: %w", csv, err)
	}
	*n = indianNumber(parsed)
	return nil
}

type tickertapeRow struct {
	FundName       string       `csv:"Fund Name"`
	AmcName        string       `csv:"AMC Name"`
	Category       string       `csv:"Category"`
	SubCategory    string       `csv:"Sub Category"`
	PlanType       string       `csv:"Plan Type"`
	OptionType     string       `csv:"Option Type"`
	Nav            indianNumber `csv:"NAV"`
	Units          indianNumber `csv:"Units"`
	InvestedAmount indianNumber `csv:"Invested Amount"`
	CurrentValue   indianNumber `csv:"Current Value"`
	Weight         indianNumber `csv:"Weight"`
	Pnl            indianNumber `csv:"P&L"`
	PnlPercent     indianNumber `csv:"P&L %"`
	Xirr           indianNumber `csv:"XIRR"`
	InvestedSince  string       `csv:"Invested Since"`
}

// ImportCSV ingests a Tickertape mutual fund export. The export carries
// summary preamble rows above the real header, so parsing starts at the
// "Fund Name" header row. Existing tickertape-sourced positions for the
// member are replaced in the same transaction.
func (h tickertapeImportServiceHandler) ImportCSV(ctx context.Context, householdID, memberID uuid.UUID, file io.Reader) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	content, err := trimToHeader(file)
	if err != nil {
		return nil, err
	}

	rows := []tickertapeRow{}
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse tickertape csv: %w", err)
	}

	investments := []model.Investment{}
	skipped := 0
	for _, row := range rows {
		fundName := strings.TrimSpace(row.FundName)
		if fundName == "" || strings.Contains(strings.ToLower(fundName), "total") {
			continue
		}
		if row.Units <= 0 {
			log.Warnf("skipping tickertape row %q: no units held", fundName)
			skipped++
			continue
		}

		iv, err := h.investmentFromRow(householdID, memberID, row)
		if err != nil {
			log.Warnf("skipping tickertape row %q: %v", fundName, err)
			skipped++
			continue
		}
		investments = append(investments, iv)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.InvestmentRepository.DeleteBySource(tx, memberID, model.SourceSystem_Tickertape); err != nil {
		return nil, err
	}
	for _, iv := range investments {
		if _, err := h.InvestmentRepository.Add(tx, iv); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}

	log.Infow("tickertape import complete", "imported", len(investments), "skipped", skipped)

	return &ImportResult{
		PositionsImported: len(investments),
		RowsSkipped:       skipped,
	}, nil
}

// trimToHeader drops everything above the column header row.
func trimToHeader(file io.Reader) (string, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := []string{}
	headerIdx := -1
	for scanner.Scan() {
		line := scanner.Text()
		if headerIdx == -1 && strings.HasPrefix(strings.TrimPrefix(line, "\""), "Fund Name") {
			headerIdx = len(lines)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read tickertape csv: %w", err)
	}
	if headerIdx == -1 {
		return "", fmt.Errorf("tickertape csv has no Fund Name header row")
	}

	return strings.Join(lines[headerIdx:], "\n"), nil
}

func (h tickertapeImportServiceHandler) investmentFromRow(householdID, memberID uuid.UUID, row tickertapeRow) (model.Investment, error) {
	units := float64(row.Units)
	averagePrice := float64(row.InvestedAmount) / units

	metadata, err := json.Marshal(map[string]interface{}{
		"amcName":       row.AmcName,
		"category":      row.Category,
		"subCategory":   row.SubCategory,
		"planType":      row.PlanType,
		"optionType":    row.OptionType,
		"weight":        float64(row.Weight),
		"pnl":           float64(row.Pnl),
		"pnlPercent":    float64(row.PnlPercent),
		"xirr":          float64(row.Xirr),
		"investedSince": row.InvestedSince,
	})
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to serialize fund metadata: %w", err)
	}

	return model.Investment{
		HouseholdID:    householdID,
		MemberID:       memberID,
		Symbol:         SymbolFromFundName(row.FundName),
		Name:           strings.TrimSpace(row.FundName),
		InvestmentType: model.InvestmentType_MutualFund,
		Quantity:       units,
		AveragePrice:   averagePrice,
		CurrentPrice:   util.FloatPointer(float64(row.Nav)),
		TotalValue:     util.FloatPointer(float64(row.CurrentValue)),
		Currency:       "INR",
		SourceSystem:   model.SourceSystem_Tickertape,
		SourceCountry:  util.StringPointer("IN"),
		Metadata:       util.StringPointer(string(metadata)),
	}, nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// SymbolFromFundName derives a stable pseudo-ticker for a fund that has no
// exchange symbol, e.g. "HDFC Top 100 Fund - Direct Growth" -> "HDFC_TOP_100".
func SymbolFromFundName(fundName string) string {
	if strings.TrimSpace(fundName) == "" {
		return "UNKNOWN"
	}

	noise := map[string]bool{
		"fund": true, "scheme": true, "plan": true,
		"direct": true, "growth": true, "dividend": true,
	}

	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(fundName), "")
	words := []string{}
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || noise[word] {
			continue
		}
		if len(word) > 4 {
			word = word[:4]
		}
		words = append(words, word)
		if len(words) == 3 {
			break
		}
	}
	if len(words) == 0 {
		return "UNKNOWN"
	}

	return strings.ToUpper(strings.Join(words, "_"))
}
