package schedule

import (
	"time"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
)

// Classify maps hours and capacity to a utilization percentage and a
// workload status. Total function: zero capacity yields 0%, available.
// Thresholds are checked in order; the first match wins.
func Classify(allocated, logged, capacity float64) (float64, models.WorkloadStatus) {
	if capacity <= 0 {
		return 0, models.StatusAvailable
	}
	percent := (allocated + logged) / capacity * 100
	switch {
	case percent == 0:
		return 0, models.StatusAvailable
	case percent <= config.UtilizationNormalMax:
		return percent, models.StatusNormal
	case percent <= config.UtilizationFullMax:
		return percent, models.StatusFullyAllocated
	default:
		return percent, models.StatusOverallocated
	}
}

// ClassifyDay classifies one member's day. Non-working days always come
// back available at 0% no matter what stray hours the ledger carries;
// those hours stay visible in raw totals elsewhere.
func ClassifyDay(m models.Member, date time.Time, totals DayTotals) (float64, models.WorkloadStatus) {
	if !IsWorkingDay(m, date) {
		return 0, models.StatusAvailable
	}
	return Classify(totals.Allocated, totals.Logged, DayCapacity(m, date))
}
