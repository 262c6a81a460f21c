package app

import (
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/require"
)

const tickertapeExport = `"Portfolio Snapshot"
"Exported On","12 Mar 2025"
"Total Invested","4,50,000.00"

"Fund Name","AMC Name","Category","Sub Category","Plan Type","Option Type","NAV","Units","Invested Amount","Current Value","Weight","P&L","P&L %","XIRR","Invested Since"
"Parag Parikh Flexi Cap Fund","PPFAS","Equity","Flexi Cap","Direct","Growth","75.50","1,325.40","80,000.00","1,00,067.70","22.5","20,067.70","25.08","18.2","Jan 2022"
"HDFC Top 100 Fund - Direct Growth","HDFC","Equity","Large Cap","Direct","Growth","920.10","120.00","95,000.00","1,10,412.00","24.8","15,412.00","16.22","14.1","Mar 2021"
"Total","","","","","","","","1,75,000.00","2,10,479.70","","35,479.70","","",""
`

func TestTrimToHeader(t *testing.T) {
	t.Run("drops the preamble above the header row", func(t *testing.T) {
		content, err := trimToHeader(strings.NewReader(tickertapeExport))
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(content, `"Fund Name"`))
	})

	t.Run("errors when no header row exists", func(t *testing.T) {
		_, err := trimToHeader(strings.NewReader("just,some,rows\n1,2,3\n"))
		require.Error(t, err)
	})
}

func TestTickertapeRowParsing(t *testing.T) {
	content, err := trimToHeader(strings.NewReader(tickertapeExport))
	require.NoError(t, err)

	rows := []tickertapeRow{}
	require.NoError(t, gocsv.UnmarshalString(content, &rows))
	require.Len(t, rows, 3)

	first := rows[0]
	require.Equal(t, "Parag Parikh Flexi Cap Fund", first.FundName)
	require.Equal(t, "PPFAS", first.AmcName)
	require.InDelta(t, 75.50, float64(first.Nav), 1e-9)
	// grouping commas inside quoted cells parse cleanly
	require.InDelta(t, 1325.40, float64(first.Units), 1e-9)
	require.InDelta(t, 80000.00, float64(first.InvestedAmount), 1e-9)
	require.InDelta(t, 100067.70, float64(first.CurrentValue), 1e-9)

	// the trailing Total row parses but gets filtered by the import
	require.Equal(t, "Total", rows[2].FundName)
}

func TestIndianNumber_UnmarshalCSV(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1,23,456.78", 123456.78},
		{"500", 500},
		{" 75.5 ", 75.5},
		{"", 0},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			var n indianNumber
			require.NoError(t, n.UnmarshalCSV(tc.raw))
			require.InDelta(t, tc.want, float64(n), 1e-9)
		})
	}

	var n indianNumber
	require.Error(t, n.UnmarshalCSV("12 Mar 2025"))
}

func TestSymbolFromFundName(t *testing.T) {
	tests := []struct {
		fundName string
		want     string
	}{
		{"HDFC Top 100 Fund - Direct Growth", "HDFC_TOP_100"},
		{"Parag Parikh Flexi Cap Fund", "PARA_PARI_FLEX"},
		{"SBI Small Cap Fund Direct Plan Growth", "SBI_SMAL_CAP"},
		{"", "UNKNOWN"},
		{"A B C", "UNKNOWN"},
	}
	for _, tc := range tests {
		t.Run(tc.fundName, func(t *testing.T) {
			require.Equal(t, tc.want, SymbolFromFundName(tc.fundName))
		})
	}
}
