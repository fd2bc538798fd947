package schedule

import (
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/util"
)

// BuildSnapshot rolls one member's ledger entries over the range into a
// workload snapshot. Raw totals include every entry; the utilization
// numerator only counts working-day hours, since non-working-day entries
// are capacity-exempt.
func BuildSnapshot(m models.Member, snap *Snapshot, r models.DateRange) models.WorkloadSnapshot {
	capacity := 0.0
	if ValidateMemberCapacity(m) == nil {
		capacity, _ = CapacityFor(m, r)
	}

	var rawAllocated, rawLogged float64
	var countedAllocated, countedLogged float64
	projects := make(map[int64]bool)
	for _, a := range snap.Query(m.ID, 0, r) {
		rawAllocated += a.AllocatedHours
		rawLogged += a.LoggedHours
		if a.AllocatedHours > 0 || a.LoggedHours > 0 {
			projects[a.ProjectID] = true
		}
		if IsWorkingDay(m, a.Date) {
			countedAllocated += a.AllocatedHours
			countedLogged += a.LoggedHours
		}
	}

	percent, status := Classify(countedAllocated, countedLogged, capacity)
	return models.WorkloadSnapshot{
		MemberID:           m.ID,
		MemberName:         m.Name,
		TotalCapacityHours: capacity,
		TotalAllocated:     rawAllocated,
		TotalLogged:        rawLogged,
		UtilizationPercent: util.Round1(percent),
		Status:             status,
		ProjectCount:       len(projects),
	}
}

// BuildSnapshots rolls up every member, preserving member order.
func BuildSnapshots(members []models.Member, snap *Snapshot, r models.DateRange) []models.WorkloadSnapshot {
	out := make([]models.WorkloadSnapshot, 0, len(members))
	for _, m := range members {
		out = append(out, BuildSnapshot(m, snap, r))
	}
	return out
}

// Aggregate rolls workload snapshots into team-level statistics. The
// average excludes zero-capacity members so they do not skew the mean;
// they are surfaced in their own count instead.
func Aggregate(snapshots []models.WorkloadSnapshot) models.CapacityReport {
	report := models.CapacityReport{TotalMembers: len(snapshots)}
	var sum float64
	var counted int
	for _, s := range snapshots {
		switch s.Status {
		case models.StatusOverallocated:
			report.OverallocatedCount++
		case models.StatusFullyAllocated:
			report.FullyAllocatedCount++
		case models.StatusNormal:
			report.NormalCount++
		case models.StatusAvailable:
			report.AvailableCount++
		}
		if s.TotalCapacityHours <= 0 {
			report.ZeroCapacityMembers++
			continue
		}
		sum += s.UtilizationPercent
		counted++
	}
	if counted > 0 {
		report.AverageUtilization = util.Round1(sum / float64(counted))
	}
	return report
}
