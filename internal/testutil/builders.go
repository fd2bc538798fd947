// Package testutil provides fluent builders for constructing test data.
package testutil

import (
	"time"

	"github.com/ovreland/teamload/internal/models"
)

// Weekdays is a shorthand Monday-Friday working-day set.
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// Date builds a normalized UTC date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MemberBuilder provides a fluent API for creating test members.
type MemberBuilder struct {
	member models.Member
}

func NewMember(id int64) *MemberBuilder {
	return &MemberBuilder{
		member: models.Member{
			ID:          id,
			Name:        "Test Member",
			HoursPerDay: 8,
			WorkingDays: append([]time.Weekday(nil), Weekdays...),
			CreatedAt:   time.Now(),
		},
	}
}

func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.member.Name = name
	return b
}

func (b *MemberBuilder) WithHoursPerDay(h float64) *MemberBuilder {
	b.member.HoursPerDay = h
	return b
}

func (b *MemberBuilder) WithWorkingDays(days ...time.Weekday) *MemberBuilder {
	b.member.WorkingDays = days
	return b
}

func (b *MemberBuilder) Build() models.Member {
	return b.member
}

// AllocationBuilder provides a fluent API for creating test allocations.
type AllocationBuilder struct {
	alloc models.Allocation
}

func NewAllocation(memberID, projectID int64, date time.Time) *AllocationBuilder {
	return &AllocationBuilder{
		alloc: models.Allocation{
			MemberID:  memberID,
			ProjectID: projectID,
			Date:      date,
		},
	}
}

func (b *AllocationBuilder) WithHours(h float64) *AllocationBuilder {
	b.alloc.AllocatedHours = h
	return b
}

func (b *AllocationBuilder) WithLogged(h float64) *AllocationBuilder {
	b.alloc.LoggedHours = h
	return b
}

func (b *AllocationBuilder) Build() models.Allocation {
	return b.alloc
}

// WeekOf returns allocations for the same member/project across the five
// weekdays starting at monday, each with the given hours.
func WeekOf(memberID, projectID int64, monday time.Time, hours float64) []models.Allocation {
	var out []models.Allocation
	for i := 0; i < 5; i++ {
		out = append(out, NewAllocation(memberID, projectID, monday.AddDate(0, 0, i)).WithHours(hours).Build())
	}
	return out
}
