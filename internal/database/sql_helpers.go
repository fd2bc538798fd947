package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// nullableString converts a string to sql.NullString for optional
// columns. Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

const dateFormat = "2006-01-02"

func formatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateFormat, s, time.UTC)
}

// encodeWorkingDays stores a weekday set as a comma-separated list of
// integers, 0=Sunday, in ascending order.
func encodeWorkingDays(days []time.Weekday) string {
	ints := make([]int, len(days))
	for i, d := range days {
		ints[i] = int(d)
	}
	// Ascending, deduplicated.
	seen := make(map[int]bool)
	var parts []string
	for v := 0; v <= 6; v++ {
		for _, d := range ints {
			if d == v && !seen[v] {
				seen[v] = true
				parts = append(parts, strconv.Itoa(v))
			}
		}
	}
	return strings.Join(parts, ",")
}

func decodeWorkingDays(s string) []time.Weekday {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 6 {
			continue
		}
		days = append(days, time.Weekday(v))
	}
	return days
}
