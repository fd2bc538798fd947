package tui

import (
	"testing"

	"github.com/ovreland/teamload/internal/models"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0h"},
		{8, "8h"},
		{4.5, "4.5h"},
		{12.25, "12.2h"},
	}
	for _, tc := range cases {
		if got := FormatHours(tc.in); got != tc.want {
			t.Fatalf("FormatHours(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(100); got != "100%" {
		t.Fatalf("FormatPercent(100) = %q", got)
	}
	if got := FormatPercent(87.5); got != "87.5%" {
		t.Fatalf("FormatPercent(87.5) = %q", got)
	}
}

func TestFormatStatus(t *testing.T) {
	cases := map[models.WorkloadStatus]string{
		models.StatusAvailable:      "available",
		models.StatusNormal:         "normal",
		models.StatusFullyAllocated: "full",
		models.StatusOverallocated:  "OVER",
	}
	for status, want := range cases {
		if got := FormatStatus(status); got != want {
			t.Fatalf("FormatStatus(%v) = %q, want %q", status, got, want)
		}
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("truncateLabel short = %q", got)
	}
	if got := truncateLabel("a very long member name", 10); len(got) == 0 {
		t.Fatalf("truncateLabel long returned empty")
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Fatalf("truncateLabel with zero width = %q", got)
	}
}
