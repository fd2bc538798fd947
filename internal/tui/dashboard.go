package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/models"
	"github.com/ovreland/teamload/internal/schedule"
)

const settingTheme = "theme"

// themeOrder fixes the cycle order for the theme hotkey.
var themeOrder = []string{"default", "dracula"}

// DashboardModel renders the team workload grid for one calendar window
// and owns the modal flows layered on top of it.
type DashboardModel struct {
	ctx context.Context
	db  Database
	cfg config.Config

	anchor      time.Time
	granularity models.RangeType
	window      models.DateRange
	days        []models.CalendarDay

	members   []models.Member
	projects  []models.Project
	snap      *schedule.Snapshot
	snapshots []models.WorkloadSnapshot
	conflicts []models.Conflict
	report    models.CapacityReport

	focusedMemberIdx int
	showConflicts    bool

	rebalance *RebalanceState
	capacity  *CapacityState

	err           error
	Message       string
	width, height int
}

func NewDashboardModel(ctx context.Context, db Database, cfg config.Config) DashboardModel {
	m := DashboardModel{
		ctx:         ctx,
		db:          db,
		cfg:         cfg,
		anchor:      schedule.DayOf(time.Now()),
		granularity: rangeTypeFromConfig(cfg.UI.DefaultRangeType),
	}

	theme := cfg.UI.Theme
	if stored, ok := db.GetSetting(ctx, settingTheme); ok {
		theme = stored
	}
	SetTheme(theme)

	m.refreshData()
	return m
}

func rangeTypeFromConfig(value string) models.RangeType {
	switch models.RangeType(value) {
	case models.RangeDay, models.RangeWeek, models.RangeMonth:
		return models.RangeType(value)
	default:
		return models.RangeWeek
	}
}

// refreshData recomputes everything derived from the ledger for the
// current window. Called after every mutation; the ledger stays the
// single source of truth.
func (m *DashboardModel) refreshData() {
	m.window = schedule.RangeFor(m.anchor, m.granularity)
	m.days = schedule.DaysIn(m.window, time.Now())

	members, err := m.db.GetMembers(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	projects, err := m.db.GetProjects(m.ctx)
	if err != nil {
		m.err = err
		return
	}
	snap, err := m.db.LoadSnapshot(m.ctx, m.window)
	if err != nil {
		m.err = err
		return
	}

	m.members, m.projects, m.snap = members, projects, snap
	m.snapshots = schedule.BuildSnapshots(members, snap, m.window)
	m.conflicts = schedule.Detect(snap, members, m.window)
	m.report = schedule.Aggregate(m.snapshots)

	if m.focusedMemberIdx >= len(m.members) {
		m.focusedMemberIdx = 0
	}
}

func (m *DashboardModel) focusedMember() (models.Member, bool) {
	if len(m.members) == 0 {
		return models.Member{}, false
	}
	return m.members[m.focusedMemberIdx], true
}

func (m *DashboardModel) projectName(id int64) string {
	for _, p := range m.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (m *DashboardModel) memberName(id int64) string {
	for _, mem := range m.members {
		if mem.ID == id {
			return mem.Name
		}
	}
	return ""
}

func (m *DashboardModel) cycleTheme() {
	current := CurrentTheme.Name
	for i, name := range themeOrder {
		if Themes[name].Name == current {
			next := themeOrder[(i+1)%len(themeOrder)]
			SetTheme(next)
			if err := m.db.SetSetting(m.ctx, settingTheme, next); err != nil {
				m.err = err
			}
			return
		}
	}
	SetTheme(themeOrder[0])
}

func (m DashboardModel) Init() tea.Cmd { return textinput.Blink }
