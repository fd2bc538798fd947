// Package schedule implements the workload scheduling engine: calendar
// generation, capacity math, utilization classification, conflict
// detection, capacity reporting, and rebalancing. Everything here is a
// pure computation over a ledger snapshot; persistence lives in the
// database package.
package schedule

import "errors"

var (
	// ErrInvalidCapacityConfig marks a member whose working hours or
	// working-day set cannot produce capacity.
	ErrInvalidCapacityConfig = errors.New("invalid capacity configuration")

	// ErrInvalidAllocation marks negative hours or a dangling reference.
	ErrInvalidAllocation = errors.New("invalid allocation")

	// ErrUnknownStrategy marks a rebalance strategy name outside the
	// accepted set.
	ErrUnknownStrategy = errors.New("unknown rebalance strategy")

	// ErrInvalidRange marks a date range whose start falls after its end.
	ErrInvalidRange = errors.New("invalid date range")
)
