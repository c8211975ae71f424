package postgres

import "github.com/pkg/errors"

// ErrNotFound marks a single-row lookup that matched nothing.
var ErrNotFound = errors.New("not found")

// ErrAlreadyCheckedIn marks a check-in insert rejected by the
// (employee_id, work_day) unique index. Callers treat it as the idempotent
// already-checked-in outcome, not a failure.
var ErrAlreadyCheckedIn = errors.New("already checked in today")
