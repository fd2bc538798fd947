package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// UpsertAllocation writes one (member, project, date) commitment,
// replacing any existing row for the same key. Validation failures
// surface immediately; nothing is clamped:
//   - negative hours are ErrInvalidAllocation
//   - dangling member/project references are ErrInvalidAllocation
//   - a member whose capacity config is invalid is ErrInvalidCapacityConfig
func (d *Database) UpsertAllocation(ctx context.Context, a models.Allocation) error {
	if a.AllocatedHours < 0 {
		return wrapErr(EntityAllocation, "upsert", 0,
			fmt.Errorf("allocated hours %.2f: %w", a.AllocatedHours, schedule.ErrInvalidAllocation))
	}
	if a.LoggedHours < 0 {
		return wrapErr(EntityAllocation, "upsert", 0,
			fmt.Errorf("logged hours %.2f: %w", a.LoggedHours, schedule.ErrInvalidAllocation))
	}

	member, err := d.GetMemberByID(ctx, a.MemberID)
	if err != nil {
		return wrapErr(EntityAllocation, "upsert", 0,
			fmt.Errorf("member %d does not resolve: %w", a.MemberID, schedule.ErrInvalidAllocation))
	}
	if err := schedule.ValidateMemberCapacity(member); err != nil {
		return wrapErr(EntityAllocation, "upsert", 0, err)
	}
	ok, err := d.ProjectExists(ctx, a.ProjectID)
	if err != nil {
		return err
	}
	if !ok {
		return wrapErr(EntityAllocation, "upsert", 0,
			fmt.Errorf("project %d does not resolve: %w", a.ProjectID, schedule.ErrInvalidAllocation))
	}

	_, err = d.DB.ExecContext(ctx, `
		INSERT INTO allocations (member_id, project_id, date, allocated_hours, logged_hours)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(member_id, project_id, date)
		DO UPDATE SET allocated_hours = excluded.allocated_hours, logged_hours = excluded.logged_hours`,
		a.MemberID, a.ProjectID, formatDate(a.Date), a.AllocatedHours, a.LoggedHours)
	return wrapErr(EntityAllocation, "upsert", 0, err)
}

// QueryAllocations returns matching rows ordered by date then project.
// Zero member/project IDs match everything.
func (d *Database) QueryAllocations(ctx context.Context, memberID, projectID int64, r models.DateRange) ([]models.Allocation, error) {
	q := NewAllocationQuery().WhereDateBetween(formatDate(r.Start), formatDate(r.End))
	if memberID != 0 {
		q.WhereMember(memberID)
	}
	if projectID != 0 {
		q.WhereProject(projectID)
	}
	query, args := q.Build()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityAllocation, "query", 0, err)
	}
	defer rows.Close()

	var out []models.Allocation
	for rows.Next() {
		var a models.Allocation
		var date string
		if err := rows.Scan(&a.ID, &a.MemberID, &a.ProjectID, &date, &a.AllocatedHours, &a.LoggedHours); err != nil {
			return nil, wrapErr(EntityAllocation, "query", 0, err)
		}
		if a.Date, err = parseDate(date); err != nil {
			return nil, wrapErr(EntityAllocation, "query", a.ID, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityAllocation, "query", 0, err)
	}
	return out, nil
}

// TotalsByMemberDay aggregates one member's hours across projects per day.
func (d *Database) TotalsByMemberDay(ctx context.Context, memberID int64, r models.DateRange) (map[time.Time]schedule.DayTotals, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT date, SUM(allocated_hours), SUM(logged_hours)
		FROM allocations
		WHERE member_id = ? AND date >= ? AND date <= ?
		GROUP BY date ORDER BY date ASC`,
		memberID, formatDate(r.Start), formatDate(r.End))
	if err != nil {
		return nil, wrapErr(EntityAllocation, "totals", memberID, err)
	}
	defer rows.Close()

	totals := make(map[time.Time]schedule.DayTotals)
	for rows.Next() {
		var date string
		var t schedule.DayTotals
		if err := rows.Scan(&date, &t.Allocated, &t.Logged); err != nil {
			return nil, wrapErr(EntityAllocation, "totals", memberID, err)
		}
		day, err := parseDate(date)
		if err != nil {
			return nil, wrapErr(EntityAllocation, "totals", memberID, err)
		}
		totals[day] = t
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityAllocation, "totals", memberID, err)
	}
	return totals, nil
}

// LoadSnapshot reads every allocation in the range into an engine
// snapshot the scheduling pipeline can compute over.
func (d *Database) LoadSnapshot(ctx context.Context, r models.DateRange) (*schedule.Snapshot, error) {
	allocations, err := d.QueryAllocations(ctx, 0, 0, r)
	if err != nil {
		return nil, err
	}
	return schedule.NewSnapshot(allocations), nil
}

// ApplyPlan commits a rebalance plan's moves in a single transaction;
// a failing move rolls back every move already applied. Callers re-run
// conflict detection afterwards; the ledger may have moved under a
// stale plan and this package does not detect that.
func (d *Database) ApplyPlan(ctx context.Context, plan models.RebalancePlan) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting plan transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mv := range plan.Moves {
		donor, ok, err := allocationInTx(ctx, tx, mv.FromMemberID, mv.ProjectID, mv.Date)
		if err != nil {
			return err
		}
		if !ok {
			return wrapErr(EntityAllocation, "apply plan", 0,
				fmt.Errorf("donor row for move %+v missing: %w", mv, schedule.ErrInvalidAllocation))
		}
		donor.AllocatedHours -= mv.Hours
		if donor.AllocatedHours < 0 {
			return wrapErr(EntityAllocation, "apply plan", 0,
				fmt.Errorf("move %+v overdraws donor: %w", mv, schedule.ErrInvalidAllocation))
		}

		receiver, ok, err := allocationInTx(ctx, tx, mv.ToMemberID, mv.ProjectID, mv.Date)
		if err != nil {
			return err
		}
		if !ok {
			receiver = models.Allocation{MemberID: mv.ToMemberID, ProjectID: mv.ProjectID, Date: mv.Date}
		}
		receiver.AllocatedHours += mv.Hours

		for _, a := range []models.Allocation{donor, receiver} {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO allocations (member_id, project_id, date, allocated_hours, logged_hours)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(member_id, project_id, date)
				DO UPDATE SET allocated_hours = excluded.allocated_hours, logged_hours = excluded.logged_hours`,
				a.MemberID, a.ProjectID, formatDate(a.Date), a.AllocatedHours, a.LoggedHours); err != nil {
				return wrapErr(EntityAllocation, "apply plan", 0, err)
			}
		}
	}
	return tx.Commit()
}

func allocationInTx(ctx context.Context, tx *sql.Tx, memberID, projectID int64, date time.Time) (models.Allocation, bool, error) {
	var a models.Allocation
	var raw string
	err := tx.QueryRowContext(ctx, `
		SELECT id, member_id, project_id, date, allocated_hours, logged_hours
		FROM allocations WHERE member_id = ? AND project_id = ? AND date = ?`,
		memberID, projectID, formatDate(date)).
		Scan(&a.ID, &a.MemberID, &a.ProjectID, &raw, &a.AllocatedHours, &a.LoggedHours)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Allocation{}, false, nil
	}
	if err != nil {
		return models.Allocation{}, false, wrapErr(EntityAllocation, "apply plan", 0, err)
	}
	if a.Date, err = parseDate(raw); err != nil {
		return models.Allocation{}, false, wrapErr(EntityAllocation, "apply plan", a.ID, err)
	}
	return a, true, nil
}
