package database

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// SeedDemoData fills an empty ledger with a plausible team so the
// dashboard has something to show on first run. Seeding a non-empty
// database is a no-op. The generator is seeded for repeatable output.
func (d *Database) SeedDemoData(ctx context.Context) error {
	members, err := d.GetMembers(ctx)
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return nil
	}

	gofakeit.Seed(42)

	var memberIDs []int64
	for i := 0; i < 5; i++ {
		hours := config.DefaultHoursPerDay
		if i == 4 {
			// One part-timer keeps the utilization spread interesting.
			hours = 4
		}
		id, err := d.CreateMember(ctx, gofakeit.Name(), hours, config.DefaultWorkingDays)
		if err != nil {
			return err
		}
		memberIDs = append(memberIDs, id)
	}

	var projectIDs []int64
	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("%s %s", gofakeit.BuzzWord(), gofakeit.HackerNoun())
		id, err := d.CreateProject(ctx, name, gofakeit.JobDescriptor())
		if err != nil {
			return err
		}
		projectIDs = append(projectIDs, id)
	}

	week := schedule.RangeFor(time.Now(), models.RangeWeek)
	for _, cal := range schedule.DaysIn(week, time.Now()) {
		if cal.IsWeekend {
			continue
		}
		day := cal.Date
		for mi, memberID := range memberIDs {
			// Two projects per member per day, weighted so some land
			// over capacity and some under.
			first := projectIDs[mi%len(projectIDs)]
			second := projectIDs[(mi+1)%len(projectIDs)]
			a := models.Allocation{
				MemberID:       memberID,
				ProjectID:      first,
				Date:           day,
				AllocatedHours: float64(gofakeit.Number(2, 6)),
				LoggedHours:    float64(gofakeit.Number(0, 4)),
			}
			if err := d.UpsertAllocation(ctx, a); err != nil {
				return err
			}
			b := models.Allocation{
				MemberID:       memberID,
				ProjectID:      second,
				Date:           day,
				AllocatedHours: float64(gofakeit.Number(1, 5)),
			}
			if err := d.UpsertAllocation(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}
