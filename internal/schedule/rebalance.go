package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/util"
)

// RebalanceOptions selects the strategy and scope for a rebalance run.
type RebalanceOptions struct {
	Strategy       string
	MaxUtilization float64 // percent; defaults to 100
	ScopeMemberIDs []int64 // empty means all members
	MaxPasses      int     // iteration budget; defaults to config.MaxRebalancePasses
}

// moveEpsilon discards float dust; hours below this never move.
const moveEpsilon = 1e-6

// Rebalance proposes a plan that resolves overallocation by moving hours
// between members under the capacity constraints. The plan is never
// applied here; the caller reviews it and commits each delta through the
// ledger. Only the "even" strategy moves hours; "skills" and "priority"
// are accepted names without an algorithm and come back as empty plans.
func Rebalance(snap *Snapshot, members []models.Member, opts RebalanceOptions) (models.RebalancePlan, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = config.StrategyEven
	}
	maxUtil := opts.MaxUtilization
	if maxUtil <= 0 {
		maxUtil = config.DefaultMaxUtilization
	}

	plan := models.RebalancePlan{
		ID:             uuid.NewString(),
		Strategy:       strategy,
		MaxUtilization: maxUtil,
	}

	switch strategy {
	case config.StrategyEven:
	case config.StrategySkills, config.StrategyPriority:
		plan.Note = fmt.Sprintf("strategy %q is an extension point without an algorithm; no moves proposed", strategy)
		plan.Shifts = utilizationShifts(scopedMembers(members, opts.ScopeMemberIDs), snap, snap)
		return plan, nil
	default:
		return models.RebalancePlan{}, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}

	scoped := scopedMembers(members, opts.ScopeMemberIDs)
	work := snap.Clone()
	days := work.Dates()

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = config.MaxRebalancePasses
	}

	capReached := true
	for pass := 0; pass < maxPasses; pass++ {
		moved := false
		for _, day := range days {
			if moveOnce(work, scoped, day, maxUtil, &plan) {
				moved = true
			}
		}
		if !moved {
			capReached = false
			break
		}
	}
	residual := residualExcess(work, scoped, days, maxUtil)
	// A move on the final allowed pass can be the one that converges;
	// the cap only matters when excess is actually left behind.
	if residual <= moveEpsilon {
		capReached = false
	}
	plan.CapReached = capReached
	if capReached {
		plan.Note = fmt.Sprintf("iteration cap of %d passes reached before convergence", maxPasses)
	}

	plan.Moves = coalesceMoves(plan.Moves)
	plan.UnresolvedOverallocation = util.Round1(residual)
	plan.Shifts = utilizationShifts(scoped, snap, work)
	return plan, nil
}

func scopedMembers(members []models.Member, scope []int64) []models.Member {
	inScope := func(id int64) bool {
		if len(scope) == 0 {
			return true
		}
		for _, s := range scope {
			if s == id {
				return true
			}
		}
		return false
	}
	var out []models.Member
	for _, m := range members {
		if inScope(m.ID) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// dayExcess returns how many hours above the target the member sits on
// that day. Non-working days report zero; their entries are
// capacity-exempt and never rebalanced.
func dayExcess(snap *Snapshot, m models.Member, day time.Time, maxUtil float64) float64 {
	capacity := DayCapacity(m, day)
	if capacity <= 0 {
		return 0
	}
	totals := snap.TotalsByMemberDay(m.ID, models.DateRange{Start: day, End: day})[day]
	percent, _ := Classify(totals.Allocated, totals.Logged, capacity)
	if percent <= maxUtil {
		return 0
	}
	return (percent - maxUtil) / 100 * capacity
}

// daySpare returns how many hours the member can still take on that day
// before hitting the target.
func daySpare(snap *Snapshot, m models.Member, day time.Time, maxUtil float64) float64 {
	capacity := DayCapacity(m, day)
	if capacity <= 0 {
		return 0
	}
	totals := snap.TotalsByMemberDay(m.ID, models.DateRange{Start: day, End: day})[day]
	percent, _ := Classify(totals.Allocated, totals.Logged, capacity)
	if percent >= maxUtil {
		return 0
	}
	return (maxUtil - percent) / 100 * capacity
}

// moveOnce performs at most one donor-to-receiver transfer for the day.
// Donor is the most overallocated member; receiver the least utilized
// member sharing a project with the donor that day, ties broken by
// lowest member id. Returns whether a move happened.
func moveOnce(work *Snapshot, members []models.Member, day time.Time, maxUtil float64, plan *models.RebalancePlan) bool {
	var donor *models.Member
	var donorExcess float64
	for i := range members {
		excess := dayExcess(work, members[i], day, maxUtil)
		if excess > donorExcess+moveEpsilon {
			donor = &members[i]
			donorExcess = excess
		}
	}
	if donor == nil {
		return false
	}

	donorProjects := work.ProjectsOn(donor.ID, day)
	var receiver *models.Member
	var receiverSpare float64
	var shared int64
	receiverPercent := maxUtil
	for i := range members {
		m := &members[i]
		if m.ID == donor.ID {
			continue
		}
		spare := daySpare(work, *m, day, maxUtil)
		if spare <= moveEpsilon {
			continue
		}
		project, ok := sharedProject(work, donorProjects, m.ID, day)
		if !ok {
			continue
		}
		totals := work.TotalsByMemberDay(m.ID, models.DateRange{Start: day, End: day})[day]
		percent, _ := Classify(totals.Allocated, totals.Logged, DayCapacity(*m, day))
		if receiver == nil || percent < receiverPercent {
			receiver = m
			receiverSpare = spare
			receiverPercent = percent
			shared = project
		}
	}
	if receiver == nil {
		// Nobody shares a project or has spare capacity: the excess
		// stays with the donor and is reported, never dropped.
		return false
	}

	donorHours := work.HoursOn(donor.ID, shared, day)
	hours := minFloat(donorExcess, receiverSpare, donorHours)
	if hours <= moveEpsilon {
		return false
	}

	applyMove(work, donor.ID, receiver.ID, shared, day, hours)
	plan.Moves = append(plan.Moves, models.RebalanceMove{
		ProjectID:    shared,
		Date:         day,
		FromMemberID: donor.ID,
		ToMemberID:   receiver.ID,
		Hours:        hours,
	})
	return true
}

// sharedProject returns the lowest-numbered project both members carry
// positive hours on for the day.
func sharedProject(work *Snapshot, donorProjects []int64, memberID int64, day time.Time) (int64, bool) {
	for _, p := range donorProjects {
		if work.HoursOn(memberID, p, day) > 0 {
			return p, true
		}
	}
	return 0, false
}

func applyMove(work *Snapshot, fromID, toID, projectID int64, day time.Time, hours float64) {
	from := findAllocation(work, fromID, projectID, day)
	to := findAllocation(work, toID, projectID, day)
	from.AllocatedHours -= hours
	to.AllocatedHours += hours
	// Upsert cannot fail here: hours stay non-negative by construction.
	_ = work.Upsert(from)
	_ = work.Upsert(to)
}

func findAllocation(work *Snapshot, memberID, projectID int64, day time.Time) models.Allocation {
	for _, a := range work.Query(memberID, projectID, models.DateRange{Start: day, End: day}) {
		return a
	}
	return models.Allocation{MemberID: memberID, ProjectID: projectID, Date: day}
}

func residualExcess(work *Snapshot, members []models.Member, days []time.Time, maxUtil float64) float64 {
	var total float64
	for _, day := range days {
		for _, m := range members {
			total += dayExcess(work, m, day, maxUtil)
		}
	}
	return total
}

func utilizationShifts(members []models.Member, before, after *Snapshot) []models.MemberShift {
	shifts := make([]models.MemberShift, 0, len(members))
	for _, m := range members {
		shift := models.MemberShift{MemberID: m.ID}
		if span, ok := before.Span(); ok {
			s := BuildSnapshot(m, before, span)
			shift.BeforePercent = s.UtilizationPercent
		}
		if span, ok := after.Span(); ok {
			s := BuildSnapshot(m, after, span)
			shift.AfterPercent = s.UtilizationPercent
		}
		shifts = append(shifts, shift)
	}
	return shifts
}

// coalesceMoves merges repeated transfers of the same project, day, and
// member pair into one entry, preserving first-seen order.
func coalesceMoves(moves []models.RebalanceMove) []models.RebalanceMove {
	type key struct {
		project  int64
		date     time.Time
		from, to int64
	}
	index := make(map[key]int)
	var out []models.RebalanceMove
	for _, mv := range moves {
		k := key{mv.ProjectID, mv.Date, mv.FromMemberID, mv.ToMemberID}
		if i, ok := index[k]; ok {
			out[i].Hours += mv.Hours
			continue
		}
		index[k] = len(out)
		out = append(out, mv)
	}
	return out
}

func minFloat(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
