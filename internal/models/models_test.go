package models

import (
	"testing"
	"time"
)

func TestWorkloadStatusConstants(t *testing.T) {
	if StatusAvailable != "available" {
		t.Fatalf("StatusAvailable = %q", StatusAvailable)
	}
	if StatusNormal != "normal" {
		t.Fatalf("StatusNormal = %q", StatusNormal)
	}
	if StatusFullyAllocated != "fully-allocated" {
		t.Fatalf("StatusFullyAllocated = %q", StatusFullyAllocated)
	}
	if StatusOverallocated != "overallocated" {
		t.Fatalf("StatusOverallocated = %q", StatusOverallocated)
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	if SeverityHigh.Rank() <= SeverityMedium.Rank() {
		t.Fatalf("high should outrank medium")
	}
	if SeverityMedium.Rank() <= SeverityLow.Rank() {
		t.Fatalf("medium should outrank low")
	}
	if ConflictSeverity("bogus").Rank() != 0 {
		t.Fatalf("unknown severity should rank 0")
	}
}

func TestMemberWorksOn(t *testing.T) {
	m := Member{WorkingDays: []time.Weekday{time.Monday, time.Wednesday}}
	if !m.WorksOn(time.Monday) {
		t.Fatalf("expected Monday to be a working day")
	}
	if m.WorksOn(time.Sunday) {
		t.Fatalf("Sunday should not be a working day")
	}
	var empty Member
	if empty.WorksOn(time.Monday) {
		t.Fatalf("empty working-day set should never match")
	}
}

func TestDateRangeDaysAndContains(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: end, Type: RangeWeek}

	if got := r.Days(); got != 5 {
		t.Fatalf("Days() = %d, want 5", got)
	}
	if !r.Contains(start) || !r.Contains(end) {
		t.Fatalf("range should be inclusive of both endpoints")
	}
	if r.Contains(end.AddDate(0, 0, 1)) {
		t.Fatalf("day after end should be outside the range")
	}
}
