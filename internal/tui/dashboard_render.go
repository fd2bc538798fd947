package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

const memberColWidth = 18

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("team") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("load")
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress any key to continue.", m.err)
	}

	if m.capacity != nil {
		return m.renderCapacityModal()
	}
	if m.rebalance != nil {
		return m.renderRebalanceModal()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n\n")
	b.WriteString(m.renderGrid() + "\n")
	b.WriteString(m.renderSummary() + "\n")
	if m.showConflicts {
		b.WriteString("\n" + m.renderConflicts() + "\n")
	}
	if m.Message != "" {
		b.WriteString("\n" + CurrentTheme.Highlight.Render(m.Message) + "\n")
	}
	b.WriteString("\n" + m.renderFooter())
	return CurrentTheme.Base.Render(b.String())
}

func (m DashboardModel) renderHeader() string {
	rangeLabel := fmt.Sprintf("%s - %s",
		m.window.Start.Format("Mon 02 Jan"), m.window.End.Format("Mon 02 Jan 2006"))
	title := fmt.Sprintf("%s v%s  |  %s  |  %s view",
		renderLogo(), AppVersion, rangeLabel, m.granularity)
	return CurrentTheme.Focused.Render(title)
}

func (m DashboardModel) renderGrid() string {
	if len(m.members) == 0 {
		return CurrentTheme.Dim.Render("No members yet. Seed demo data with --seed or add members.")
	}

	cellWidth := 7
	if m.granularity == models.RangeMonth {
		cellWidth = 4
	}

	var b strings.Builder

	// Day header row
	b.WriteString(strings.Repeat(" ", memberColWidth))
	for _, day := range m.days {
		label := day.Date.Format("02")
		if cellWidth >= 7 {
			label = day.Date.Format("Mon 02")
		}
		style := CurrentTheme.Cell
		if day.IsWeekend {
			style = CurrentTheme.Weekend
		}
		if day.IsToday {
			style = CurrentTheme.Today
		}
		b.WriteString(style.Render(pad(label, cellWidth)))
	}
	b.WriteString(pad("util", 8))
	b.WriteString("\n")

	for i, member := range m.members {
		name := truncateLabel(member.Name, memberColWidth-2)
		nameStyle := CurrentTheme.Cell
		if i == m.focusedMemberIdx {
			nameStyle = CurrentTheme.Focused
			name = "> " + name
		} else {
			name = "  " + name
		}
		b.WriteString(nameStyle.Render(pad(name, memberColWidth)))

		totals := m.snap.TotalsByMemberDay(member.ID, m.window)
		for _, day := range m.days {
			dt := totals[day.Date]
			_, status := schedule.ClassifyDay(member, day.Date, dt)
			label := "-"
			if dt.Allocated > 0 {
				label = FormatHours(dt.Allocated)
				if cellWidth < 7 {
					label = strings.TrimSuffix(label, "h")
				}
			}
			style := statusStyle(status)
			if day.IsWeekend && dt.Allocated == 0 {
				style = CurrentTheme.Weekend
			}
			b.WriteString(style.Render(pad(label, cellWidth)))
		}

		snapshot := m.snapshots[i]
		b.WriteString(statusStyle(snapshot.Status).Render(pad(FormatPercent(snapshot.UtilizationPercent), 8)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderSummary() string {
	r := m.report
	line := fmt.Sprintf("%d members  |  over: %d  full: %d  normal: %d  available: %d  |  avg util %s",
		r.TotalMembers, r.OverallocatedCount, r.FullyAllocatedCount,
		r.NormalCount, r.AvailableCount, FormatPercent(r.AverageUtilization))
	if r.ZeroCapacityMembers > 0 {
		line += fmt.Sprintf("  (%d without capacity)", r.ZeroCapacityMembers)
	}
	if n := len(m.conflicts); n > 0 {
		line += "  |  " + CurrentTheme.SeverityHigh.Render(fmt.Sprintf("%d conflicts", n))
	}
	return CurrentTheme.Dim.Render(line)
}

func (m DashboardModel) renderConflicts() string {
	if len(m.conflicts) == 0 {
		return CurrentTheme.Dim.Render("No conflicts in this window.")
	}
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Conflicts") + "\n")
	for _, c := range m.conflicts {
		tag := severityStyle(c.Severity).Render(pad(strings.ToUpper(string(c.Severity)), 8))
		b.WriteString(fmt.Sprintf("%s %s\n", tag, c.Message))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderRebalanceModal() string {
	plan := m.rebalance.Plan
	var content strings.Builder
	content.WriteString(CurrentTheme.Focused.Render("Rebalance Preview") + "\n\n")

	if plan.Note != "" {
		content.WriteString(CurrentTheme.Dim.Render(plan.Note) + "\n")
	}
	if len(plan.Moves) == 0 {
		content.WriteString("No moves proposed.\n")
	}
	for _, mv := range plan.Moves {
		line := fmt.Sprintf("%s  %s  %s -> %s  %s",
			mv.Date.Format("Mon 02 Jan"),
			truncateLabel(m.projectName(mv.ProjectID), 20),
			m.memberName(mv.FromMemberID),
			m.memberName(mv.ToMemberID),
			FormatHours(mv.Hours))
		content.WriteString(line + "\n")
	}

	if len(plan.Shifts) > 0 {
		content.WriteString("\n")
		for _, s := range plan.Shifts {
			content.WriteString(fmt.Sprintf("%s: %s -> %s\n",
				m.memberName(s.MemberID),
				FormatPercent(s.BeforePercent), FormatPercent(s.AfterPercent)))
		}
	}
	if plan.UnresolvedOverallocation > 0 {
		content.WriteString("\n" + CurrentTheme.Over.Render(
			fmt.Sprintf("Unresolved overallocation: %s", FormatHours(plan.UnresolvedOverallocation))) + "\n")
	}
	content.WriteString("\n" + CurrentTheme.Dim.Render("[enter] apply  [esc] cancel"))

	return m.centeredBox(content.String())
}

func (m DashboardModel) renderCapacityModal() string {
	state := m.capacity
	var content strings.Builder
	content.WriteString(CurrentTheme.Focused.Render("Capacity: "+state.MemberName) + "\n\n")
	content.WriteString("Hours per day: " + state.HoursInput.View() + "\n\n")

	for i, day := range weekdayCycle {
		mark := "[ ]"
		if state.Days[day] {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s %s", mark, day.String()[:3])
		if i == state.DayCursor {
			label = CurrentTheme.Focused.Render(label)
		}
		content.WriteString(label + " ")
	}
	content.WriteString("\n")
	if state.Status != "" {
		content.WriteString("\n" + CurrentTheme.Over.Render(state.Status) + "\n")
	}
	content.WriteString("\n" + CurrentTheme.Dim.Render("[tab] next day  [space] toggle  [enter] save  [esc] cancel"))

	return m.centeredBox(content.String())
}

func (m DashboardModel) centeredBox(content string) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	box := frame.Render(content)
	return "\x1b[H\x1b[2J" + lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DashboardModel) renderFooter() string {
	keys := "[h/l] window  [j/k] member  [d/w/m] range  [t] today  [c] conflicts  [u] capacity  [r] rebalance  [e] pdf  [x] xlsx  [T] theme  [q] quit"
	return CurrentTheme.Dim.Render(truncateLabel(keys, maxInt(m.width-4, 20)))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
