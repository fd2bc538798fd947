package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/ovreland/teamload/internal/models"
)

// DayTotals aggregates one member's hours across all projects for a day.
type DayTotals struct {
	Allocated float64
	Logged    float64
}

// Snapshot is an in-memory view of the allocation ledger the engine
// computes over. It is a value: callers build one from database rows (or
// directly in tests), run the pipeline, and throw it away. Mutation via
// Upsert exists so the rebalancer can simulate moves; the persistent
// ledger is only changed through the database package.
type Snapshot struct {
	allocations []models.Allocation
}

// NewSnapshot copies and canonically orders the given allocations:
// date, then project, then member.
func NewSnapshot(allocations []models.Allocation) *Snapshot {
	s := &Snapshot{allocations: make([]models.Allocation, len(allocations))}
	for i, a := range allocations {
		a.Date = DayOf(a.Date)
		s.allocations[i] = a
	}
	s.sort()
	return s
}

func (s *Snapshot) sort() {
	sort.SliceStable(s.allocations, func(i, j int) bool {
		a, b := s.allocations[i], s.allocations[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.ProjectID != b.ProjectID {
			return a.ProjectID < b.ProjectID
		}
		return a.MemberID < b.MemberID
	})
}

// Upsert replaces any existing row with the same (member, project, date)
// key. Negative hours are rejected, never clamped.
func (s *Snapshot) Upsert(a models.Allocation) error {
	if a.AllocatedHours < 0 {
		return fmt.Errorf("allocated hours %.2f: %w", a.AllocatedHours, ErrInvalidAllocation)
	}
	if a.LoggedHours < 0 {
		return fmt.Errorf("logged hours %.2f: %w", a.LoggedHours, ErrInvalidAllocation)
	}
	a.Date = DayOf(a.Date)
	for i, existing := range s.allocations {
		if existing.MemberID == a.MemberID && existing.ProjectID == a.ProjectID && existing.Date.Equal(a.Date) {
			s.allocations[i] = a
			return nil
		}
	}
	s.allocations = append(s.allocations, a)
	s.sort()
	return nil
}

// Query returns all allocations matching the filters, ordered by date
// then project. Zero member or project IDs match everything.
func (s *Snapshot) Query(memberID, projectID int64, r models.DateRange) []models.Allocation {
	var out []models.Allocation
	for _, a := range s.allocations {
		if memberID != 0 && a.MemberID != memberID {
			continue
		}
		if projectID != 0 && a.ProjectID != projectID {
			continue
		}
		if !r.Contains(a.Date) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// TotalsByMemberDay aggregates the member's hours across all projects
// for each day of the range that carries entries.
func (s *Snapshot) TotalsByMemberDay(memberID int64, r models.DateRange) map[time.Time]DayTotals {
	totals := make(map[time.Time]DayTotals)
	for _, a := range s.allocations {
		if a.MemberID != memberID || !r.Contains(a.Date) {
			continue
		}
		t := totals[a.Date]
		t.Allocated += a.AllocatedHours
		t.Logged += a.LoggedHours
		totals[a.Date] = t
	}
	return totals
}

// HoursOn returns the member's allocated hours for one project and day.
func (s *Snapshot) HoursOn(memberID, projectID int64, date time.Time) float64 {
	date = DayOf(date)
	for _, a := range s.allocations {
		if a.MemberID == memberID && a.ProjectID == projectID && a.Date.Equal(date) {
			return a.AllocatedHours
		}
	}
	return 0
}

// ProjectsOn lists the projects the member has positive allocated hours
// on for the given day, in ascending project order.
func (s *Snapshot) ProjectsOn(memberID int64, date time.Time) []int64 {
	date = DayOf(date)
	var ids []int64
	for _, a := range s.allocations {
		if a.MemberID == memberID && a.Date.Equal(date) && a.AllocatedHours > 0 {
			ids = append(ids, a.ProjectID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Dates returns every distinct day in the snapshot, ascending.
func (s *Snapshot) Dates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, a := range s.allocations {
		if !seen[a.Date] {
			seen[a.Date] = true
			dates = append(dates, a.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Span returns the inclusive range covering every entry, or false when
// the snapshot is empty.
func (s *Snapshot) Span() (models.DateRange, bool) {
	dates := s.Dates()
	if len(dates) == 0 {
		return models.DateRange{}, false
	}
	return models.DateRange{Start: dates[0], End: dates[len(dates)-1]}, true
}

// Allocations returns a copy of the canonical allocation list.
func (s *Snapshot) Allocations() []models.Allocation {
	out := make([]models.Allocation, len(s.allocations))
	copy(out, s.allocations)
	return out
}

// Clone deep-copies the snapshot so the rebalancer can simulate moves
// without touching the caller's view.
func (s *Snapshot) Clone() *Snapshot {
	return NewSnapshot(s.allocations)
}

// Len reports the number of allocation rows.
func (s *Snapshot) Len() int {
	return len(s.allocations)
}
