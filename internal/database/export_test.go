package database

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ovreland/teamload/internal/models"
)

func buildExportFixture(t *testing.T) (*TestDataBuilder, *Database) {
	t.Helper()
	b := NewTestDataBuilder(t).WithMembers(2).WithProjects(2)
	b.WithAllocation(1, 1, testDate(t, "2026-03-02"), 4)
	b.WithAllocation(1, 2, testDate(t, "2026-03-03"), 3)
	b.WithAllocation(2, 1, testDate(t, "2026-03-02"), 6)
	return b, b.Build()
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, src := buildExportFixture(t)

	data, err := src.ExportJSON(ctx, "")
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	var bundle ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if bundle.Version != exportVersion {
		t.Fatalf("version = %d, want %d", bundle.Version, exportVersion)
	}
	if bundle.SnapshotID == "" || bundle.ExportedAt == "" {
		t.Fatalf("expected snapshot id and timestamp, got %+v", bundle)
	}
	if len(bundle.Members) != 2 || len(bundle.Projects) != 2 || len(bundle.Allocations) != 3 {
		t.Fatalf("unexpected bundle sizes: %d members, %d projects, %d allocations",
			len(bundle.Members), len(bundle.Projects), len(bundle.Allocations))
	}

	dst := setupTestDB(t, ctx)
	if err := dst.ImportJSON(ctx, data, ""); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	members, err := dst.GetMembers(ctx)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 2 || members[0].Name != "Member 1" {
		t.Fatalf("members did not round-trip: %+v", members)
	}
	r := models.DateRange{Start: testDate(t, "2026-03-02"), End: testDate(t, "2026-03-03")}
	rows, err := dst.QueryAllocations(ctx, 0, 0, r)
	if err != nil {
		t.Fatalf("QueryAllocations failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("allocations did not round-trip, got %d rows", len(rows))
	}
}

func TestImportJSON_ReplacesExistingRows(t *testing.T) {
	ctx := context.Background()
	_, src := buildExportFixture(t)
	data, err := src.ExportJSON(ctx, "")
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := NewTestDataBuilder(t).WithMembers(3).WithProjects(1)
	dst.WithAllocation(3, 1, testDate(t, "2026-05-01"), 8)
	db := dst.Build()

	if err := db.ImportJSON(ctx, data, ""); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	members, err := db.GetMembers(ctx)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("import must replace existing members, got %d", len(members))
	}
}

func TestExportJSON_Encrypted(t *testing.T) {
	ctx := context.Background()
	_, src := buildExportFixture(t)

	data, err := src.ExportJSON(ctx, "open sesame")
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if strings.Contains(string(data), "Member 1") {
		t.Fatalf("encrypted export leaks plaintext")
	}
	var wrapped encryptedExport
	if err := json.Unmarshal(data, &wrapped); err != nil || !wrapped.Encrypted {
		t.Fatalf("expected encrypted envelope, got %s", data)
	}

	dst := setupTestDB(t, ctx)
	if err := dst.ImportJSON(ctx, data, ""); !errors.Is(err, ErrExportEncrypted) {
		t.Fatalf("import without passphrase: err = %v, want ErrExportEncrypted", err)
	}
	if err := dst.ImportJSON(ctx, data, "wrong"); !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("import with wrong passphrase: err = %v, want ErrWrongPassphrase", err)
	}
	if err := dst.ImportJSON(ctx, data, "open sesame"); err != nil {
		t.Fatalf("import with passphrase failed: %v", err)
	}
	members, err := dst.GetMembers(ctx)
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("encrypted export did not round-trip, got %d members", len(members))
	}
}

func TestImportJSON_VersionTooNew(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	data := []byte(`{"version": 99, "members": [], "projects": [], "allocations": []}`)
	if err := db.ImportJSON(ctx, data, ""); err == nil {
		t.Fatalf("expected error for future export version")
	}
}
