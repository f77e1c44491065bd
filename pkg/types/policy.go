package types

import (
	"errors"
	"slices"
)

// Policy validation errors.
var (
	ErrDefaultHoursInvalid = errors.New("default task hours must be positive")
)

// Policy controls which repairs may touch explicit schedule dates and what
// defaults the repair passes assign. It replaces hardcoded task identifier
// lists with configuration so the rules travel with the document corpus
// rather than the binary.
type Policy struct {
	// KeepDates lists task UIDs whose explicit Start/Finish values are
	// preserved (fixed-date constraints).
	KeepDates []string

	// MilestoneExceptions lists milestone task UIDs whose explicit dates
	// are preserved.
	MilestoneExceptions []string

	// DefaultTaskHours is the duration and work, in hours, assigned to
	// tasks found with zero duration and zero work.
	DefaultTaskHours int
}

// DefaultPolicy returns the policy shipped with the tool. The identifier
// lists match the sample corpus the repair rules were derived from.
func DefaultPolicy() Policy {
	return Policy{
		KeepDates:           []string{"3", "37"},
		MilestoneExceptions: []string{"39", "40", "41", "42"},
		DefaultTaskHours:    8,
	}
}

// Validate checks that the Policy is well-formed. It returns a sentinel
// error from this package on failure.
func (p Policy) Validate() error {
	if p.DefaultTaskHours <= 0 {
		return ErrDefaultHoursInvalid
	}
	return nil
}

// KeepsDates reports whether the task with the given UID is exempt from
// explicit date removal. Milestone tasks may be exempted separately from
// fixed-date tasks.
func (p Policy) KeepsDates(uid string, milestone bool) bool {
	if slices.Contains(p.KeepDates, uid) {
		return true
	}
	return milestone && slices.Contains(p.MilestoneExceptions, uid)
}
