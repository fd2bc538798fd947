package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// CreateMember provisions a member. The capacity configuration is
// validated up front so a member that can never hold an allocation is
// rejected at the boundary, not discovered later.
func (d *Database) CreateMember(ctx context.Context, name string, hoursPerDay float64, workingDays []time.Weekday) (int64, error) {
	probe := models.Member{Name: name, HoursPerDay: hoursPerDay, WorkingDays: workingDays}
	if err := schedule.ValidateMemberCapacity(probe); err != nil {
		return 0, wrapErr(EntityMember, "create", 0, err)
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO members (name, hours_per_day, working_days) VALUES (?, ?, ?)",
		name, hoursPerDay, encodeWorkingDays(workingDays))
	if err != nil {
		return 0, wrapErr(EntityMember, "create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityMember, "create", 0, err)
	}
	return id, nil
}

// GetMembers retrieves all members ordered by id.
func (d *Database) GetMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, name, hours_per_day, working_days, created_at FROM members ORDER BY id ASC")
	if err != nil {
		return nil, wrapErr(EntityMember, "list", 0, err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, wrapErr(EntityMember, "list", 0, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityMember, "list", 0, err)
	}
	return members, nil
}

// GetMemberByID retrieves one member.
func (d *Database) GetMemberByID(ctx context.Context, id int64) (models.Member, error) {
	row := d.DB.QueryRowContext(ctx,
		"SELECT id, name, hours_per_day, working_days, created_at FROM members WHERE id = ?", id)
	m, err := scanMember(row)
	if err != nil {
		return models.Member{}, wrapErr(EntityMember, "get", id, err)
	}
	return m, nil
}

// MemberExists reports whether the id resolves,
// without loading the full row.
func (d *Database) MemberExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := d.DB.QueryRowContext(ctx, "SELECT 1 FROM members WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapErr(EntityMember, "exists", id, err)
	}
	return true, nil
}

// SetMemberCapacity updates the working hours and day mask. The same
// validation as CreateMember applies.
func (d *Database) SetMemberCapacity(ctx context.Context, id int64, hoursPerDay float64, workingDays []time.Weekday) error {
	probe := models.Member{Name: "member", HoursPerDay: hoursPerDay, WorkingDays: workingDays}
	if err := schedule.ValidateMemberCapacity(probe); err != nil {
		return wrapErr(EntityMember, "set capacity", id, err)
	}
	res, err := d.DB.ExecContext(ctx,
		"UPDATE members SET hours_per_day = ?, working_days = ? WHERE id = ?",
		hoursPerDay, encodeWorkingDays(workingDays), id)
	if err != nil {
		return wrapErr(EntityMember, "set capacity", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wrapErr(EntityMember, "set capacity", id, sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner) (models.Member, error) {
	var m models.Member
	var days string
	if err := row.Scan(&m.ID, &m.Name, &m.HoursPerDay, &days, &m.CreatedAt); err != nil {
		return models.Member{}, err
	}
	m.WorkingDays = decodeWorkingDays(days)
	return m, nil
}
