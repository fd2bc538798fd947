package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovreland/teamload/internal/models"
)

// CapacityState edits one member's working hours and weekday mask.
type CapacityState struct {
	MemberID   int64
	MemberName string
	HoursInput textinput.Model
	Days       map[time.Weekday]bool
	DayCursor  int
	Status     string
}

// weekdayCycle lists weekdays in display order, Monday first.
var weekdayCycle = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func (m *DashboardModel) openCapacityModal(member models.Member) {
	ti := textinput.New()
	ti.Placeholder = "8"
	ti.CharLimit = 5
	ti.Width = 10
	ti.SetValue(strconv.FormatFloat(member.HoursPerDay, 'f', -1, 64))
	ti.Focus()

	days := make(map[time.Weekday]bool)
	for _, d := range member.WorkingDays {
		days[d] = true
	}
	m.capacity = &CapacityState{
		MemberID:   member.ID,
		MemberName: member.Name,
		HoursInput: ti,
		Days:       days,
	}
}

func (m *DashboardModel) closeCapacityModal() {
	m.capacity = nil
}

func (m DashboardModel) updateCapacityModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	state := m.capacity
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.closeCapacityModal()
			return m, nil
		case tea.KeyEnter:
			m.saveCapacity()
			return m, nil
		case tea.KeyTab:
			state.DayCursor = (state.DayCursor + 1) % len(weekdayCycle)
			return m, nil
		case tea.KeyShiftTab:
			state.DayCursor = (state.DayCursor + len(weekdayCycle) - 1) % len(weekdayCycle)
			return m, nil
		case tea.KeySpace:
			day := weekdayCycle[state.DayCursor]
			state.Days[day] = !state.Days[day]
			return m, nil
		}
	}

	state.HoursInput, cmd = state.HoursInput.Update(msg)
	return m, cmd
}

func (m *DashboardModel) saveCapacity() {
	state := m.capacity
	hours, err := strconv.ParseFloat(strings.TrimSpace(state.HoursInput.Value()), 64)
	if err != nil {
		state.Status = "Enter a numeric hour value"
		return
	}
	var days []time.Weekday
	for _, d := range weekdayCycle {
		if state.Days[d] {
			days = append(days, d)
		}
	}
	if err := m.db.SetMemberCapacity(m.ctx, state.MemberID, hours, days); err != nil {
		state.Status = fmt.Sprintf("Cannot save: %v", err)
		return
	}
	m.Message = fmt.Sprintf("Capacity updated for %s", state.MemberName)
	m.closeCapacityModal()
	m.refreshData()
}
