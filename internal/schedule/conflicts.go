package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
)

// Detect scans the snapshot for overallocated days and overlapping
// project commitments within the range. The result is fully ordered:
// severity descending, then date, then member, then message, so two runs
// over the same ledger produce identical lists and callers get
// worst-problem-first triage for free.
func Detect(snap *Snapshot, members []models.Member, r models.DateRange) []models.Conflict {
	var conflicts []models.Conflict

	ordered := make([]models.Member, len(members))
	copy(ordered, members)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, m := range ordered {
		conflicts = append(conflicts, detectOverallocation(snap, m, r)...)
		conflicts = append(conflicts, detectOverlaps(snap, m, r)...)
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.MemberID != b.MemberID {
			return a.MemberID < b.MemberID
		}
		return a.Message < b.Message
	})
	return conflicts
}

func detectOverallocation(snap *Snapshot, m models.Member, r models.DateRange) []models.Conflict {
	totals := snap.TotalsByMemberDay(m.ID, r)
	days := make([]time.Time, 0, len(totals))
	for d := range totals {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var out []models.Conflict
	for _, day := range days {
		percent, status := ClassifyDay(m, day, totals[day])
		if status != models.StatusOverallocated {
			continue
		}
		severity := models.SeverityMedium
		if percent > config.OverallocationHighAbove {
			severity = models.SeverityHigh
		}
		out = append(out, models.Conflict{
			Kind:     models.ConflictOverallocation,
			MemberID: m.ID,
			Start:    day,
			End:      day,
			Severity: severity,
			Message: fmt.Sprintf("%s is allocated %.1fh of %.1fh capacity on %s (%.0f%%)",
				m.Name, totals[day].Allocated, DayCapacity(m, day), day.Format("2006-01-02"), percent),
		})
	}
	return out
}

// commitmentSpan is a project's contiguous committed range for a member,
// derived from the dated entries in the ledger.
type commitmentSpan struct {
	projectID int64
	start     time.Time
	end       time.Time
	byDay     map[time.Time]float64
}

func commitmentSpans(snap *Snapshot, memberID int64, r models.DateRange) []commitmentSpan {
	byProject := make(map[int64]*commitmentSpan)
	var order []int64
	for _, a := range snap.Query(memberID, 0, r) {
		if a.AllocatedHours <= 0 {
			continue
		}
		span, ok := byProject[a.ProjectID]
		if !ok {
			span = &commitmentSpan{projectID: a.ProjectID, start: a.Date, end: a.Date, byDay: make(map[time.Time]float64)}
			byProject[a.ProjectID] = span
			order = append(order, a.ProjectID)
		}
		if a.Date.Before(span.start) {
			span.start = a.Date
		}
		if a.Date.After(span.end) {
			span.end = a.Date
		}
		span.byDay[a.Date] += a.AllocatedHours
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	spans := make([]commitmentSpan, 0, len(order))
	for _, id := range order {
		spans = append(spans, *byProject[id])
	}
	return spans
}

func detectOverlaps(snap *Snapshot, m models.Member, r models.DateRange) []models.Conflict {
	spans := commitmentSpans(snap, m.ID, r)
	var out []models.Conflict
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			start, end := laterOf(a.start, b.start), earlierOf(a.end, b.end)
			if start.After(end) {
				continue
			}
			severity := models.SeverityLow
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				if a.byDay[d]+b.byDay[d] > DayCapacity(m, d) && DayCapacity(m, d) > 0 {
					severity = models.SeverityHigh
					break
				}
			}
			out = append(out, models.Conflict{
				Kind:     models.ConflictScheduleOverlap,
				MemberID: m.ID,
				Start:    start,
				End:      end,
				Severity: severity,
				Message: fmt.Sprintf("%s has overlapping commitments to projects %d and %d between %s and %s",
					m.Name, a.projectID, b.projectID, start.Format("2006-01-02"), end.Format("2006-01-02")),
			})
		}
	}
	return out
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
