package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ovreland/teamload/internal/models"
)

// CreateProject registers a project reference for allocations.
func (d *Database) CreateProject(ctx context.Context, name, team string) (int64, error) {
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO projects (name, team) VALUES (?, ?)", name, team)
	if err != nil {
		return 0, wrapErr(EntityProject, "create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityProject, "create", 0, err)
	}
	return id, nil
}

// GetProjects retrieves all projects ordered by id.
func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, name, team, created_at FROM projects ORDER BY id ASC")
	if err != nil {
		return nil, wrapErr(EntityProject, "list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var team *string
		if err := rows.Scan(&p.ID, &p.Name, &team, &p.CreatedAt); err != nil {
			return nil, wrapErr(EntityProject, "list", 0, err)
		}
		if team != nil {
			p.Team = *team
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityProject, "list", 0, err)
	}
	return projects, nil
}

// ProjectExists reports whether the id resolves.
func (d *Database) ProjectExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := d.DB.QueryRowContext(ctx, "SELECT 1 FROM projects WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapErr(EntityProject, "exists", id, err)
	}
	return true, nil
}
