package accounting_test

import (
	"testing"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestFiscalLabel(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		date       time.Time
		startMonth time.Month
		wantYear   string
		wantPeriod int
	}{
		{"april start, mid year", date(2025, time.June, 15), time.April, "2025-2026", 3},
		{"april start, first period", date(2025, time.April, 1), time.April, "2025-2026", 1},
		{"april start, last period", date(2026, time.March, 31), time.April, "2025-2026", 12},
		{"april start, before start rolls back", date(2025, time.February, 10), time.April, "2024-2025", 11},
		{"january start collapses label", date(2025, time.June, 15), time.January, "2025", 6},
		{"january start, december", date(2025, time.December, 31), time.January, "2025", 12},
		{"july start, year boundary", date(2025, time.June, 30), time.July, "2024-2025", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, period := accounting.FiscalLabel(tt.date, tt.startMonth)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantPeriod, period)
		})
	}
}
