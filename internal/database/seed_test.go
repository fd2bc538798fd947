package database

import (
	"context"
	"testing"
	"time"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}
	members, err := db.GetMembers(ctx)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 5 {
		t.Fatalf("expected 5 seeded members, got %d", len(members))
	}
	projects, err := db.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects failed: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 seeded projects, got %d", len(projects))
	}

	week := schedule.RangeFor(time.Now(), models.RangeWeek)
	rows, err := db.QueryAllocations(ctx, 0, 0, week)
	if err != nil {
		t.Fatalf("QueryAllocations failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("expected seeded allocations for the current week")
	}
	for _, a := range rows {
		if a.AllocatedHours < 0 {
			t.Fatalf("seeded allocation with negative hours: %+v", a)
		}
	}
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}
	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData second run failed: %v", err)
	}
	members, err := db.GetMembers(ctx)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 5 {
		t.Fatalf("seeding twice must not duplicate members, got %d", len(members))
	}
}
