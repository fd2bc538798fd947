package tui

import (
	"github.com/ovreland/teamload/internal/models"
)

// RebalanceState holds a proposed plan while the user previews it. The
// plan touches nothing until it is confirmed and applied through the
// ledger.
type RebalanceState struct {
	Plan models.RebalancePlan
}

func (m *DashboardModel) openRebalancePreview(plan models.RebalancePlan) {
	m.rebalance = &RebalanceState{Plan: plan}
}

func (m *DashboardModel) closeRebalancePreview() {
	m.rebalance = nil
}

func (m *DashboardModel) applyRebalance() {
	if m.rebalance == nil {
		return
	}
	plan := m.rebalance.Plan
	m.rebalance = nil
	if len(plan.Moves) == 0 {
		m.Message = "Nothing to apply"
		return
	}
	if err := m.db.ApplyPlan(m.ctx, plan); err != nil {
		m.err = err
		return
	}
	m.Message = "Rebalance applied"
	m.refreshData()
}
