package schedule

import (
	"fmt"
	"time"

	"github.com/ovreland/teamload/internal/models"
)

// ValidateMemberCapacity rejects members that can never hold an
// allocation. Surfaced at the ledger boundary before any write.
func ValidateMemberCapacity(m models.Member) error {
	if m.HoursPerDay <= 0 {
		return fmt.Errorf("member %q: working hours per day must be positive: %w", m.Name, ErrInvalidCapacityConfig)
	}
	if len(m.WorkingDays) == 0 {
		return fmt.Errorf("member %q: working-day set is empty: %w", m.Name, ErrInvalidCapacityConfig)
	}
	return nil
}

// IsWorkingDay applies the member's working-day mask to a date. A day
// outside the mask contributes zero capacity regardless of the global
// weekend flags.
func IsWorkingDay(m models.Member, date time.Time) bool {
	return m.WorksOn(DayOf(date).Weekday())
}

// CapacityFor computes the member's total capacity over the range:
// hours-per-day times the number of range days in the working-day set.
func CapacityFor(m models.Member, r models.DateRange) (float64, error) {
	if err := ValidateMemberCapacity(m); err != nil {
		return 0, err
	}
	if r.Start.After(r.End) {
		return 0, fmt.Errorf("range %s after %s: %w",
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"), ErrInvalidRange)
	}
	days := 0
	for d := DayOf(r.Start); !d.After(DayOf(r.End)); d = d.AddDate(0, 0, 1) {
		if m.WorksOn(d.Weekday()) {
			days++
		}
	}
	return m.HoursPerDay * float64(days), nil
}

// DayCapacity returns the member's capacity for a single date: the daily
// hours on a working day, zero otherwise. Invalid configs report zero
// here; writes against them are already rejected upstream.
func DayCapacity(m models.Member, date time.Time) float64 {
	if m.HoursPerDay <= 0 || !IsWorkingDay(m, date) {
		return 0
	}
	return m.HoursPerDay
}
