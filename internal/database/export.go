package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Export format version. Bump when the shape changes.
const exportVersion = 1

type ExportMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hours_per_day"`
	WorkingDays string  `json:"working_days"`
}

type ExportProject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Team string `json:"team,omitempty"`
}

type ExportAllocation struct {
	MemberID       int64   `json:"member_id"`
	ProjectID      int64   `json:"project_id"`
	Date           string  `json:"date"`
	AllocatedHours float64 `json:"allocated_hours"`
	LoggedHours    float64 `json:"logged_hours,omitempty"`
}

type ExportBundle struct {
	Version     int                `json:"version"`
	SnapshotID  string             `json:"snapshot_id"`
	ExportedAt  string             `json:"exported_at"`
	Members     []ExportMember     `json:"members"`
	Projects    []ExportProject    `json:"projects"`
	Allocations []ExportAllocation `json:"allocations"`
}

// ExportJSON serializes the whole ledger. With a passphrase the payload
// is sealed with an scrypt-derived AES-GCM key; otherwise it is plain
// indented JSON.
func (d *Database) ExportJSON(ctx context.Context, passphrase string) ([]byte, error) {
	bundle, err := d.buildExportBundle(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling export: %w", err)
	}
	if passphrase == "" {
		return payload, nil
	}
	return encryptExport(payload, passphrase)
}

// ImportJSON replaces the ledger contents with the bundle's. Encrypted
// bundles need the matching passphrase.
func (d *Database) ImportJSON(ctx context.Context, data []byte, passphrase string) error {
	payload, err := maybeDecryptExport(data, passphrase)
	if err != nil {
		return err
	}
	var bundle ExportBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return fmt.Errorf("parsing export: %w", err)
	}
	if bundle.Version > exportVersion {
		return fmt.Errorf("export version %d is newer than this build understands", bundle.Version)
	}
	return d.restoreBundle(ctx, bundle)
}

func (d *Database) buildExportBundle(ctx context.Context) (ExportBundle, error) {
	bundle := ExportBundle{
		Version:    exportVersion,
		SnapshotID: uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	members, err := d.GetMembers(ctx)
	if err != nil {
		return bundle, err
	}
	for _, m := range members {
		bundle.Members = append(bundle.Members, ExportMember{
			ID:          m.ID,
			Name:        m.Name,
			HoursPerDay: m.HoursPerDay,
			WorkingDays: encodeWorkingDays(m.WorkingDays),
		})
	}

	projects, err := d.GetProjects(ctx)
	if err != nil {
		return bundle, err
	}
	for _, p := range projects {
		bundle.Projects = append(bundle.Projects, ExportProject{ID: p.ID, Name: p.Name, Team: p.Team})
	}

	rows, err := d.DB.QueryContext(ctx,
		"SELECT member_id, project_id, date, allocated_hours, logged_hours FROM allocations ORDER BY date, project_id, member_id")
	if err != nil {
		return bundle, wrapErr(EntityAllocation, "export", 0, err)
	}
	defer rows.Close()
	for rows.Next() {
		var a ExportAllocation
		if err := rows.Scan(&a.MemberID, &a.ProjectID, &a.Date, &a.AllocatedHours, &a.LoggedHours); err != nil {
			return bundle, wrapErr(EntityAllocation, "export", 0, err)
		}
		bundle.Allocations = append(bundle.Allocations, a)
	}
	return bundle, rows.Err()
}

func (d *Database) restoreBundle(ctx context.Context, bundle ExportBundle) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"allocations", "projects", "members"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, m := range bundle.Members {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO members (id, name, hours_per_day, working_days) VALUES (?, ?, ?, ?)",
			m.ID, m.Name, m.HoursPerDay, m.WorkingDays); err != nil {
			return wrapErr(EntityMember, "import", m.ID, err)
		}
	}
	for _, p := range bundle.Projects {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO projects (id, name, team) VALUES (?, ?, ?)",
			p.ID, p.Name, nullableString(p.Team)); err != nil {
			return wrapErr(EntityProject, "import", p.ID, err)
		}
	}
	for _, a := range bundle.Allocations {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO allocations (member_id, project_id, date, allocated_hours, logged_hours) VALUES (?, ?, ?, ?, ?)",
			a.MemberID, a.ProjectID, a.Date, a.AllocatedHours, a.LoggedHours); err != nil {
			return wrapErr(EntityAllocation, "import", 0, err)
		}
	}

	return tx.Commit()
}
