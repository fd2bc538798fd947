package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/testutil"
)

func weekRange() models.DateRange {
	return models.DateRange{
		Start: testutil.Date(2026, time.March, 2),
		End:   testutil.Date(2026, time.March, 8),
	}
}

func TestSnapshotUpsertOverwrites(t *testing.T) {
	snap := NewSnapshot(nil)
	monday := testutil.Date(2026, time.March, 2)

	if err := snap.Upsert(testutil.NewAllocation(1, 10, monday).WithHours(4).Build()); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := snap.Upsert(testutil.NewAllocation(1, 10, monday).WithHours(6).Build()); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if snap.Len() != 1 {
		t.Fatalf("same key should overwrite, got %d rows", snap.Len())
	}
	if got := snap.HoursOn(1, 10, monday); got != 6 {
		t.Fatalf("hours = %v, want 6 (overwrite, not accumulate)", got)
	}
}

func TestSnapshotUpsertIdempotent(t *testing.T) {
	monday := testutil.Date(2026, time.March, 2)
	a := testutil.NewAllocation(1, 10, monday).WithHours(5).Build()

	once := NewSnapshot(nil)
	if err := once.Upsert(a); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	twice := NewSnapshot(nil)
	if err := twice.Upsert(a); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := twice.Upsert(a); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	a1, a2 := once.Allocations(), twice.Allocations()
	if len(a1) != len(a2) {
		t.Fatalf("double upsert changed row count: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("double upsert changed state: %+v vs %+v", a1[i], a2[i])
		}
	}
}

func TestSnapshotUpsertRejectsNegative(t *testing.T) {
	snap := NewSnapshot(nil)
	monday := testutil.Date(2026, time.March, 2)

	err := snap.Upsert(testutil.NewAllocation(1, 10, monday).WithHours(-1).Build())
	if !errors.Is(err, ErrInvalidAllocation) {
		t.Fatalf("negative allocated hours: err = %v, want ErrInvalidAllocation", err)
	}
	err = snap.Upsert(testutil.NewAllocation(1, 10, monday).WithHours(1).WithLogged(-0.5).Build())
	if !errors.Is(err, ErrInvalidAllocation) {
		t.Fatalf("negative logged hours: err = %v, want ErrInvalidAllocation", err)
	}
	if snap.Len() != 0 {
		t.Fatalf("rejected upserts must not mutate the snapshot")
	}
}

func TestSnapshotQueryOrdering(t *testing.T) {
	monday := testutil.Date(2026, time.March, 2)
	tuesday := monday.AddDate(0, 0, 1)
	snap := NewSnapshot([]models.Allocation{
		testutil.NewAllocation(1, 20, tuesday).WithHours(2).Build(),
		testutil.NewAllocation(1, 20, monday).WithHours(2).Build(),
		testutil.NewAllocation(1, 10, tuesday).WithHours(2).Build(),
		testutil.NewAllocation(1, 10, monday).WithHours(2).Build(),
	})

	got := snap.Query(1, 0, weekRange())
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}
	// Date ascending, then project ascending.
	wantOrder := []struct {
		date    time.Time
		project int64
	}{
		{monday, 10}, {monday, 20}, {tuesday, 10}, {tuesday, 20},
	}
	for i, w := range wantOrder {
		if !got[i].Date.Equal(w.date) || got[i].ProjectID != w.project {
			t.Fatalf("row %d = (%s, %d), want (%s, %d)",
				i, got[i].Date.Format("2006-01-02"), got[i].ProjectID,
				w.date.Format("2006-01-02"), w.project)
		}
	}
}

func TestSnapshotQueryFilters(t *testing.T) {
	monday := testutil.Date(2026, time.March, 2)
	snap := NewSnapshot([]models.Allocation{
		testutil.NewAllocation(1, 10, monday).WithHours(2).Build(),
		testutil.NewAllocation(2, 10, monday).WithHours(3).Build(),
		testutil.NewAllocation(1, 20, monday).WithHours(4).Build(),
	})

	if got := snap.Query(1, 0, weekRange()); len(got) != 2 {
		t.Fatalf("member filter: got %d rows, want 2", len(got))
	}
	if got := snap.Query(0, 10, weekRange()); len(got) != 2 {
		t.Fatalf("project filter: got %d rows, want 2", len(got))
	}
	if got := snap.Query(2, 20, weekRange()); len(got) != 0 {
		t.Fatalf("no-match filter: got %d rows, want 0", len(got))
	}
}

func TestTotalsByMemberDay(t *testing.T) {
	monday := testutil.Date(2026, time.March, 2)
	snap := NewSnapshot([]models.Allocation{
		testutil.NewAllocation(1, 10, monday).WithHours(4).WithLogged(1).Build(),
		testutil.NewAllocation(1, 20, monday).WithHours(3).WithLogged(0.5).Build(),
		testutil.NewAllocation(2, 10, monday).WithHours(8).Build(),
	})

	totals := snap.TotalsByMemberDay(1, weekRange())
	got, ok := totals[monday]
	if !ok {
		t.Fatalf("expected totals for Monday")
	}
	if got.Allocated != 7 {
		t.Fatalf("allocated = %v, want 7 (aggregated across projects)", got.Allocated)
	}
	if got.Logged != 1.5 {
		t.Fatalf("logged = %v, want 1.5", got.Logged)
	}
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	monday := testutil.Date(2026, time.March, 2)
	snap := NewSnapshot([]models.Allocation{
		testutil.NewAllocation(1, 10, monday).WithHours(4).Build(),
	})
	clone := snap.Clone()
	if err := clone.Upsert(testutil.NewAllocation(1, 10, monday).WithHours(8).Build()); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if got := snap.HoursOn(1, 10, monday); got != 4 {
		t.Fatalf("mutating the clone changed the original: %v", got)
	}
}

func TestSnapshotSpan(t *testing.T) {
	if _, ok := NewSnapshot(nil).Span(); ok {
		t.Fatalf("empty snapshot should have no span")
	}
	snap := NewSnapshot([]models.Allocation{
		testutil.NewAllocation(1, 10, testutil.Date(2026, time.March, 4)).WithHours(1).Build(),
		testutil.NewAllocation(1, 10, testutil.Date(2026, time.March, 2)).WithHours(1).Build(),
	})
	span, ok := snap.Span()
	if !ok {
		t.Fatalf("expected a span")
	}
	if span.Start.Day() != 2 || span.End.Day() != 4 {
		t.Fatalf("span = %s..%s, want 02..04",
			span.Start.Format("2006-01-02"), span.End.Format("2006-01-02"))
	}
}
