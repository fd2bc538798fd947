package models

import "time"

// WorkloadStatus enumerates the utilization bands a member can be in.
type WorkloadStatus string

const (
	StatusAvailable      WorkloadStatus = "available"
	StatusNormal         WorkloadStatus = "normal"
	StatusFullyAllocated WorkloadStatus = "fully-allocated"
	StatusOverallocated  WorkloadStatus = "overallocated"
)

// RangeType controls the granularity of a calendar window.
type RangeType string

const (
	RangeDay   RangeType = "day"
	RangeWeek  RangeType = "week"
	RangeMonth RangeType = "month"
)

// ConflictKind enumerates the scheduling problems the detector reports.
type ConflictKind string

const (
	ConflictOverallocation  ConflictKind = "overallocation"
	ConflictScheduleOverlap ConflictKind = "schedule-overlap"
)

// ConflictSeverity orders conflicts for triage.
type ConflictSeverity string

const (
	SeverityLow    ConflictSeverity = "low"
	SeverityMedium ConflictSeverity = "medium"
	SeverityHigh   ConflictSeverity = "high"
)

// Rank maps a severity to a sortable weight. Higher is worse.
func (s ConflictSeverity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Member represents a provisioned team member with a daily capacity.
type Member struct {
	ID          int64
	Name        string
	HoursPerDay float64
	WorkingDays []time.Weekday // empty means the member can never be allocated
	CreatedAt   time.Time
}

// WorksOn reports whether the weekday is in the member's working-day set.
func (m Member) WorksOn(d time.Weekday) bool {
	for _, wd := range m.WorkingDays {
		if wd == d {
			return true
		}
	}
	return false
}

// Project is an externally owned reference; allocations point at it.
type Project struct {
	ID        int64
	Name      string
	Team      string
	CreatedAt time.Time
}

// Allocation is a single (member, project, day) commitment.
// The triple is unique; upserts overwrite, they never accumulate.
type Allocation struct {
	ID             int64
	MemberID       int64
	ProjectID      int64
	Date           time.Time // normalized to midnight UTC
	AllocatedHours float64
	LoggedHours    float64
}

// DateRange is an inclusive day-level range.
type DateRange struct {
	Start time.Time
	End   time.Time
	Type  RangeType
}

// Days returns the number of calendar days the range covers.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

// CalendarDay is derived per query and never stored.
type CalendarDay struct {
	Date      time.Time
	IsWeekend bool
	IsToday   bool
	Label     string
}

// WorkloadSnapshot is the derived per-member rollup over a queried range.
// The allocation ledger remains the source of truth.
type WorkloadSnapshot struct {
	MemberID           int64
	MemberName         string
	TotalCapacityHours float64
	TotalAllocated     float64
	TotalLogged        float64
	UtilizationPercent float64
	Status             WorkloadStatus
	ProjectCount       int
}

// Conflict is a detected scheduling problem. Regenerated per query,
// never persisted independently of the ledger that caused it.
type Conflict struct {
	Kind     ConflictKind
	MemberID int64
	Start    time.Time
	End      time.Time
	Severity ConflictSeverity
	Message  string
}

// RebalanceMove is a single proposed transfer of hours between members
// on one project and day.
type RebalanceMove struct {
	ProjectID    int64
	Date         time.Time
	FromMemberID int64
	ToMemberID   int64
	Hours        float64
}

// MemberShift summarizes one member's utilization before and after a plan.
type MemberShift struct {
	MemberID      int64
	BeforePercent float64
	AfterPercent  float64
}

// RebalancePlan is a proposed set of allocation mutations. It is owned by
// the rebalancer until the caller commits it through the ledger.
type RebalancePlan struct {
	ID                       string
	Strategy                 string
	MaxUtilization           float64
	Moves                    []RebalanceMove
	Shifts                   []MemberShift
	UnresolvedOverallocation float64
	CapReached               bool
	Note                     string
}

// CapacityReport is the team-level rollup of workload snapshots.
type CapacityReport struct {
	TotalMembers        int
	OverallocatedCount  int
	FullyAllocatedCount int
	NormalCount         int
	AvailableCount      int
	ZeroCapacityMembers int
	AverageUtilization  float64
}
