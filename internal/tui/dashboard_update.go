package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
	"github.com/ovreland/teamload/internal/util"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear error on keypress
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.err = nil
			return m, nil
		}
	}
	// Clear transient messages on keypress
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
			return m, nil
		}
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = sizeMsg.Width, sizeMsg.Height
		return m, nil
	}

	if m.capacity != nil {
		return m.updateCapacityModal(msg)
	}
	if m.rebalance != nil {
		return m.updateRebalanceModal(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyLeft:
		m.shiftWindow(-1)
		return m, nil
	case tea.KeyRight:
		m.shiftWindow(1)
		return m, nil
	case tea.KeyUp:
		m.moveFocus(-1)
		return m, nil
	case tea.KeyDown:
		m.moveFocus(1)
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.shiftWindow(-1)
	case "l":
		m.shiftWindow(1)
	case "k":
		m.moveFocus(-1)
	case "j":
		m.moveFocus(1)
	case "t":
		m.anchor = schedule.DayOf(time.Now())
		m.refreshData()
	case "d":
		m.setGranularity(models.RangeDay)
	case "w":
		m.setGranularity(models.RangeWeek)
	case "m":
		m.setGranularity(models.RangeMonth)
	case "c":
		m.showConflicts = !m.showConflicts
	case "u":
		if member, ok := m.focusedMember(); ok {
			m.openCapacityModal(member)
		}
	case "r":
		m.previewRebalance()
	case "T":
		m.cycleTheme()
	case "e":
		m.exportReport(GeneratePDFReport, "PDF")
	case "x":
		m.exportReport(GenerateXLSXReport, "XLSX")
	}
	return m, nil
}

func (m DashboardModel) updateRebalanceModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyEsc:
		m.closeRebalancePreview()
	case tea.KeyEnter:
		m.applyRebalance()
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m *DashboardModel) shiftWindow(direction int) {
	switch m.granularity {
	case models.RangeDay:
		m.anchor = m.anchor.AddDate(0, 0, direction)
	case models.RangeMonth:
		m.anchor = m.anchor.AddDate(0, direction, 0)
	default:
		m.anchor = m.anchor.AddDate(0, 0, 7*direction)
	}
	m.refreshData()
}

func (m *DashboardModel) moveFocus(direction int) {
	if len(m.members) == 0 {
		return
	}
	m.focusedMemberIdx = util.Clamp(m.focusedMemberIdx+direction, 0, len(m.members)-1)
}

func (m *DashboardModel) setGranularity(granularity models.RangeType) {
	if m.granularity == granularity {
		return
	}
	m.granularity = granularity
	m.refreshData()
}

func (m *DashboardModel) previewRebalance() {
	plan, err := schedule.Rebalance(m.snap, m.members, schedule.RebalanceOptions{
		Strategy:       config.StrategyEven,
		MaxUtilization: config.DefaultMaxUtilization,
	})
	if err != nil {
		m.err = err
		return
	}
	m.openRebalancePreview(plan)
}

type reportGenerator func(ctx context.Context, db Database, r models.DateRange, outDir string) (string, error)

func (m *DashboardModel) exportReport(generate reportGenerator, kind string) {
	path, err := generate(m.ctx, m.db, m.window, m.cfg.Reports.OutputDir)
	if err != nil {
		m.err = err
		return
	}
	m.Message = fmt.Sprintf("%s report written to %s", kind, path)
}
