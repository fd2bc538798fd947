package config

import "time"

// Utilization thresholds (percent). First match wins, checked in order.
const (
	UtilizationNormalMax = 75.0
	UtilizationFullMax   = 100.0
	// Overallocation between full and this bound is a medium conflict;
	// anything above it is high.
	OverallocationHighAbove = 120.0
)

// Rebalancing.
const (
	DefaultMaxUtilization = 100.0
	MaxRebalancePasses    = 1000
	StrategyEven          = "even"
	StrategySkills        = "skills"
	StrategyPriority      = "priority"
)

// Scheduling defaults applied to newly provisioned members.
var DefaultWorkingDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

const DefaultHoursPerDay = 8.0

// Database/application settings.
const (
	AppName    = "teamload"
	DBFileName = "teamload.db"
)
