package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors
var (
	ErrInvalidDay      = errors.New("workinghours: day must be a bool, a period string, or a list of period strings")
	ErrInvalidPeriod   = errors.New("workinghours: period must have the form hh:mm-hh:mm")
	ErrInvalidClock    = errors.New("workinghours: time must have the form hh:mm with integer hour and minute")
	ErrClockOutOfRange = errors.New("workinghours: hour must be 0-23 and minute 0-59")
	ErrEndBeforeBegin  = errors.New("workinghours: period end is before begin")
	ErrEmptyPeriods    = errors.New("workinghours: interval set needs at least one period")
)

// DayError reports which weekday of a schedule failed to parse.
type DayError struct {
	Day time.Weekday
	Err error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Day, e.Err)
}

func (e *DayError) Unwrap() error {
	return e.Err
}
