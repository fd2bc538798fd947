package database

import (
	"context"
	"time"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// MemberRepository defines member-related database operations.
type MemberRepository interface {
	CreateMember(ctx context.Context, name string, hoursPerDay float64, workingDays []time.Weekday) (int64, error)
	GetMembers(ctx context.Context) ([]models.Member, error)
	GetMemberByID(ctx context.Context, id int64) (models.Member, error)
	SetMemberCapacity(ctx context.Context, id int64, hoursPerDay float64, workingDays []time.Weekday) error
}

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	CreateProject(ctx context.Context, name, team string) (int64, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
}

// AllocationRepository defines allocation ledger operations.
type AllocationRepository interface {
	UpsertAllocation(ctx context.Context, a models.Allocation) error
	QueryAllocations(ctx context.Context, memberID, projectID int64, r models.DateRange) ([]models.Allocation, error)
	LoadSnapshot(ctx context.Context, r models.DateRange) (*schedule.Snapshot, error)
	ApplyPlan(ctx context.Context, plan models.RebalancePlan) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type Repository interface {
	MemberRepository
	ProjectRepository
	AllocationRepository
}

var _ Repository = (*Database)(nil)
