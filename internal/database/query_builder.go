package database

import (
	"fmt"
	"strings"
)

const allocationColumns = "id, member_id, project_id, date, allocated_hours, logged_hours"

// AllocationQuery builds filtered allocation SELECTs. Results always come
// back ordered by date then project so ledger reads are deterministic.
type AllocationQuery struct {
	filters []string
	args    []interface{}
	limit   int
}

func NewAllocationQuery() *AllocationQuery {
	return &AllocationQuery{}
}

func (q *AllocationQuery) Where(filter string, args ...interface{}) *AllocationQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *AllocationQuery) WhereMember(memberID int64) *AllocationQuery {
	return q.Where("member_id = ?", memberID)
}

func (q *AllocationQuery) WhereProject(projectID int64) *AllocationQuery {
	return q.Where("project_id = ?", projectID)
}

func (q *AllocationQuery) WhereDateBetween(start, end string) *AllocationQuery {
	return q.Where("date >= ? AND date <= ?", start, end)
}

func (q *AllocationQuery) Limit(limit int) *AllocationQuery {
	q.limit = limit
	return q
}

func (q *AllocationQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM allocations", allocationColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	query += " ORDER BY date ASC, project_id ASC, member_id ASC"
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
