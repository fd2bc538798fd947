package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ovreland/teamload/internal/models"
)

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	memberIDs  []int64
	projectIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithMembers(count int) *TestDataBuilder {
	b.t.Helper()
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Member %d", i+1)
		id, err := b.db.CreateMember(b.ctx, name, 8, weekdays)
		if err != nil {
			b.t.Fatalf("CreateMember failed: %v", err)
		}
		b.memberIDs = append(b.memberIDs, id)
	}
	return b
}

func (b *TestDataBuilder) WithProjects(count int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("Project %d", i+1)
		id, err := b.db.CreateProject(b.ctx, name, "")
		if err != nil {
			b.t.Fatalf("CreateProject failed: %v", err)
		}
		b.projectIDs = append(b.projectIDs, id)
	}
	return b
}

// WithAllocation writes hours for the given member and project index
// (1-based, matching the order the builder created them in).
func (b *TestDataBuilder) WithAllocation(memberIdx, projectIdx int, date time.Time, hours float64) *TestDataBuilder {
	b.t.Helper()
	if len(b.memberIDs) < memberIdx {
		b.WithMembers(memberIdx - len(b.memberIDs))
	}
	if len(b.projectIDs) < projectIdx {
		b.WithProjects(projectIdx - len(b.projectIDs))
	}
	a := models.Allocation{
		MemberID:       b.memberIDs[memberIdx-1],
		ProjectID:      b.projectIDs[projectIdx-1],
		Date:           date,
		AllocatedHours: hours,
	}
	if err := b.db.UpsertAllocation(b.ctx, a); err != nil {
		b.t.Fatalf("UpsertAllocation failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) MemberID(idx int) int64 {
	if len(b.memberIDs) < idx {
		return 0
	}
	return b.memberIDs[idx-1]
}

func (b *TestDataBuilder) ProjectID(idx int) int64 {
	if len(b.projectIDs) < idx {
		return 0
	}
	return b.projectIDs[idx-1]
}
