package tui

import (
	"context"
	"time"

	"github.com/ovreland/teamload/internal/database"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	GetMembers(ctx context.Context) ([]models.Member, error)
	GetMemberByID(ctx context.Context, id int64) (models.Member, error)
	SetMemberCapacity(ctx context.Context, id int64, hoursPerDay float64, workingDays []time.Weekday) error

	GetProjects(ctx context.Context) ([]models.Project, error)

	UpsertAllocation(ctx context.Context, a models.Allocation) error
	QueryAllocations(ctx context.Context, memberID, projectID int64, r models.DateRange) ([]models.Allocation, error)
	LoadSnapshot(ctx context.Context, r models.DateRange) (*schedule.Snapshot, error)
	ApplyPlan(ctx context.Context, plan models.RebalancePlan) error
}

var _ Database = (*database.Database)(nil)
