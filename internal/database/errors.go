package database

import "fmt"

// Entity names used in operation errors.
const (
	EntityMember     = "member"
	EntityProject    = "project"
	EntityAllocation = "allocation"
	EntitySetting    = "setting"
)

// OpError wraps a database failure with the entity and operation that
// caused it.
type OpError struct {
	Entity string
	Op     string
	ID     int64
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Entity: entity, Op: op, ID: id, Err: err}
}
