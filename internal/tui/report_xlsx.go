package tui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

// GenerateXLSXReport writes the capacity report for the range as a
// spreadsheet with one row per member plus a conflicts sheet.
func GenerateXLSXReport(ctx context.Context, db Database, r models.DateRange, outDir string) (string, error) {
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

	f := excelize.NewFile()
	defer f.Close()

	const teamSheet = "Team"
	index, err := f.NewSheet(teamSheet)
	if err != nil {
		return "", fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("creating header style: %w", err)
	}

	headers := []string{"Member", "Capacity (h)", "Allocated (h)", "Logged (h)", "Utilization (%)", "Status", "Projects"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(teamSheet, cell, header)
	}
	f.SetCellStyle(teamSheet, "A1", "G1", headerStyle)

	for i, s := range snapshots {
		row := i + 2
		f.SetCellValue(teamSheet, fmt.Sprintf("A%d", row), s.MemberName)
		f.SetCellValue(teamSheet, fmt.Sprintf("B%d", row), s.TotalCapacityHours)
		f.SetCellValue(teamSheet, fmt.Sprintf("C%d", row), s.TotalAllocated)
		f.SetCellValue(teamSheet, fmt.Sprintf("D%d", row), s.TotalLogged)
		f.SetCellValue(teamSheet, fmt.Sprintf("E%d", row), s.UtilizationPercent)
		f.SetCellValue(teamSheet, fmt.Sprintf("F%d", row), string(s.Status))
		f.SetCellValue(teamSheet, fmt.Sprintf("G%d", row), s.ProjectCount)
	}

	const conflictSheet = "Conflicts"
	if _, err := f.NewSheet(conflictSheet); err != nil {
		return "", fmt.Errorf("creating sheet: %w", err)
	}
	conflictHeaders := []string{"Severity", "Kind", "Member", "Start", "End", "Detail"}
	for i, header := range conflictHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(conflictSheet, cell, header)
	}
	f.SetCellStyle(conflictSheet, "A1", "F1", headerStyle)
	for i, c := range conflicts {
		row := i + 2
		f.SetCellValue(conflictSheet, fmt.Sprintf("A%d", row), string(c.Severity))
		f.SetCellValue(conflictSheet, fmt.Sprintf("B%d", row), string(c.Kind))
		f.SetCellValue(conflictSheet, fmt.Sprintf("C%d", row), c.MemberID)
		f.SetCellValue(conflictSheet, fmt.Sprintf("D%d", row), c.Start.Format("2006-01-02"))
		f.SetCellValue(conflictSheet, fmt.Sprintf("E%d", row), c.End.Format("2006-01-02"))
		f.SetCellValue(conflictSheet, fmt.Sprintf("F%d", row), c.Message)
	}

	f.DeleteSheet("Sheet1")

	dir, err := reportOutputDir(outDir)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("capacity_%s_%s.xlsx",
		r.Start.Format("20060102"), r.End.Format("20060102")))
	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("writing XLSX report: %w", err)
	}
	return filename, nil
}
