package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
	"github.com/ovreland/teamload/internal/util"
)

func reportOutputDir(outDir string) (string, error) {
	if outDir == "" {
		outDir = util.ReportsDir(config.AppName)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	return outDir, nil
}

// GeneratePDFReport writes the capacity report for the range as a PDF
// and returns the file path.
func GeneratePDFReport(ctx context.Context, db Database, r models.DateRange, outDir string) (string, error) {
	members, err := db.GetMembers(ctx)
	if err != nil {
		return "", err
	}
	snap, err := db.LoadSnapshot(ctx, r)
	if err != nil {
		return "", err
	}
	snapshots := schedule.BuildSnapshots(members, snap, r)
	conflicts := schedule.Detect(snap, members, r)
	report := schedule.Aggregate(snapshots)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Capacity Report: %s - %s",
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Team")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(snapshots) == 0 {
		pdf.Cell(0, 8, "  - No members.")
		pdf.Ln(8)
	}
	for _, s := range snapshots {
		line := fmt.Sprintf("  %s: %s of %s allocated (%s, %s, %d projects)",
			s.MemberName, FormatHours(s.TotalAllocated), FormatHours(s.TotalCapacityHours),
			FormatPercent(s.UtilizationPercent), FormatStatus(s.Status), s.ProjectCount)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Conflicts")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(conflicts) == 0 {
		pdf.Cell(0, 8, "  - None detected.")
		pdf.Ln(8)
	}
	for _, c := range conflicts {
		pdf.MultiCell(0, 8, fmt.Sprintf("  [%s] %s", c.Severity, c.Message), "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	summary := fmt.Sprintf("Members: %d  Overallocated: %d  Average utilization: %s",
		report.TotalMembers, report.OverallocatedCount, FormatPercent(report.AverageUtilization))
	pdf.Cell(0, 10, summary)
	pdf.Ln(10)

	dir, err := reportOutputDir(outDir)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("capacity_%s_%s.pdf",
		r.Start.Format("20060102"), r.End.Format("20060102")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("writing PDF report: %w", err)
	}
	return filename, nil
}
