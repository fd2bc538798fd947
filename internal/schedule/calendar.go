package schedule

import (
	"time"

	"github.com/ovreland/teamload/internal/models"
)

// DayOf normalizes a timestamp to midnight UTC of its civil date. All
// ledger dates and calendar math use this normal form, so ranges spanning
// a DST transition are measured in whole calendar days.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same civil date.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// RangeFor returns the inclusive date range the granularity implies for
// the anchor date. Weeks run Monday through Sunday.
func RangeFor(anchor time.Time, granularity models.RangeType) models.DateRange {
	day := DayOf(anchor)
	switch granularity {
	case models.RangeWeek:
		offset := int(day.Weekday()-time.Monday+7) % 7
		start := day.AddDate(0, 0, -offset)
		return models.DateRange{Start: start, End: start.AddDate(0, 0, 6), Type: models.RangeWeek}
	case models.RangeMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return models.DateRange{Start: start, End: end, Type: models.RangeMonth}
	default:
		return models.DateRange{Start: day, End: day, Type: models.RangeDay}
	}
}

// Generate produces the ordered calendar days for the window containing
// anchor. Weekend flags describe the raw Saturday/Sunday calendar only;
// per-member working-day masks are applied by the capacity model on top.
func Generate(anchor time.Time, granularity models.RangeType, now time.Time) []models.CalendarDay {
	return DaysIn(RangeFor(anchor, granularity), now)
}

// DaysIn expands a date range into its calendar days.
func DaysIn(r models.DateRange, now time.Time) []models.CalendarDay {
	today := DayOf(now)
	var days []models.CalendarDay
	for d := DayOf(r.Start); !d.After(DayOf(r.End)); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		days = append(days, models.CalendarDay{
			Date:      d,
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
			IsToday:   d.Equal(today),
			Label:     d.Format("Mon 02 Jan"),
		})
	}
	return days
}
