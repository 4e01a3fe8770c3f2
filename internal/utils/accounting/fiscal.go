package accounting

import (
	"fmt"
	"strconv"
	"time"
)

// FiscalLabel derives the fiscal year label and 1-based fiscal period for an
// entry date, given the month the fiscal year starts in. With startMonth
// April, 2025-06-15 yields ("2025-2026", 3). A January start collapses the
// label to the calendar year.
func FiscalLabel(date time.Time, startMonth time.Month) (string, int) {
	period := (int(date.Month()) - int(startMonth) + 12) % 12
	startYear := date.Year()
	if int(date.Month()) < int(startMonth) {
		startYear--
	}
	if startMonth == time.January {
		return strconv.Itoa(startYear), period + 1
	}
	return fmt.Sprintf("%d-%d", startYear, startYear+1), period + 1
}
