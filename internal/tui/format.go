package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ovreland/teamload/internal/models"
)

// FormatHours renders an hour count without trailing noise ("6h", "4.5h").
func FormatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatPercent renders a utilization percentage for display.
func FormatPercent(p float64) string {
	if p == float64(int(p)) {
		return fmt.Sprintf("%d%%", int(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// FormatStatus returns a short label for a workload status.
func FormatStatus(s models.WorkloadStatus) string {
	switch s {
	case models.StatusAvailable:
		return "available"
	case models.StatusNormal:
		return "normal"
	case models.StatusFullyAllocated:
		return "full"
	case models.StatusOverallocated:
		return "OVER"
	default:
		return string(s)
	}
}

func statusStyle(s models.WorkloadStatus) lipgloss.Style {
	switch s {
	case models.StatusOverallocated:
		return CurrentTheme.Over
	case models.StatusFullyAllocated:
		return CurrentTheme.Full
	case models.StatusNormal:
		return CurrentTheme.Normal
	default:
		return CurrentTheme.Available
	}
}

func severityStyle(s models.ConflictSeverity) lipgloss.Style {
	switch s {
	case models.SeverityHigh:
		return CurrentTheme.SeverityHigh
	case models.SeverityMedium:
		return CurrentTheme.SeverityMedium
	default:
		return CurrentTheme.SeverityLow
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
