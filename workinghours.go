// Package workinghours checks whether a point in time falls inside a weekly
// working-hours schedule.
//
// This is the main package users should import. It re-exports all public
// types from the pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// Weekdays 9 to 5, weekends off
//	wh, err := workinghours.New([]any{
//	    false,
//	    "09:00-17:00",
//	    "09:00-17:00",
//	    "09:00-17:00",
//	    "09:00-17:00",
//	    "09:00-17:00",
//	    false,
//	})
//	if err != nil {
//	    return err
//	}
//
//	if wh.Test(time.Now()) {
//	    page(oncall)
//	}
//
//	// A single value applies to every day
//	lunch, _ := workinghours.New("12:00-13:00")
//	lunch.Test(time.Now(), workinghours.UTC(true))
//
//	// Only run a cron job during working hours
//	c := cron.New(cron.WithChain(workinghours.OnDuty(wh)))
package workinghours

import (
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/jdziat/working-hours/pkg/gate"
	"github.com/jdziat/working-hours/pkg/hours"
	"github.com/jdziat/working-hours/pkg/schedule"
)

// Type aliases for the public API
type (
	// WorkingHours answers whether an instant falls inside a weekly schedule.
	WorkingHours = hours.WorkingHours

	// Option modifies Options.
	Option = hours.Option

	// Options holds configuration for a single Test or NextStart call.
	Options = hours.Options

	// Week holds one DayRule per weekday, indexed by time.Weekday.
	Week = schedule.Week

	// DayRule is the policy for a single weekday.
	DayRule = schedule.DayRule

	// Kind identifies which variant a DayRule holds.
	Kind = schedule.Kind

	// Interval is an inclusive window of minutes since midnight.
	Interval = schedule.Interval

	// DayError reports which weekday of a schedule failed to parse.
	DayError = schedule.DayError

	// GateOption configures OnDuty and Starts.
	GateOption = gate.Option

	// GateConfig holds gate configuration.
	GateConfig = gate.Config
)

// Day rule kinds
const (
	AlwaysOff   = schedule.AlwaysOff
	AlwaysOn    = schedule.AlwaysOn
	IntervalSet = schedule.IntervalSet
)

// Validation errors
var (
	ErrInvalidDay      = schedule.ErrInvalidDay
	ErrInvalidPeriod   = schedule.ErrInvalidPeriod
	ErrInvalidClock    = schedule.ErrInvalidClock
	ErrClockOutOfRange = schedule.ErrClockOutOfRange
	ErrEndBeforeBegin  = schedule.ErrEndBeforeBegin
	ErrEmptyPeriods    = schedule.ErrEmptyPeriods
)

// New parses a raw schedule into a WorkingHours.
//
// The schedule is either seven day values (index 0 is Sunday) or a single day
// value used for every day. A day value is true, false, a string of
// comma-separated "hh:mm-hh:mm" periods, or a list of such strings.
func New(sched any) (*WorkingHours, error) {
	return hours.New(sched)
}

// FromWeek wraps an already normalized Week.
func FromWeek(week Week) *WorkingHours {
	return hours.FromWeek(week)
}

// Parse normalizes a raw schedule into a Week.
func Parse(sched any) (Week, error) {
	return schedule.Parse(sched)
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return hours.NewOptions()
}

// UTC selects the UTC representation of the queried instant.
func UTC(enabled bool) Option {
	return hours.UTC(enabled)
}

// On returns a rule that matches the whole day.
func On() DayRule {
	return schedule.On()
}

// Off returns a rule that matches nothing.
func Off() DayRule {
	return schedule.Off()
}

// Periods returns an interval-set rule from the given intervals.
func Periods(intervals ...Interval) (DayRule, error) {
	return schedule.Periods(intervals...)
}

// Every returns a Week applying rule to all seven days.
func Every(rule DayRule) Week {
	return schedule.Every(rule)
}

// OnDuty returns a cron.JobWrapper that only runs jobs during working hours.
func OnDuty(wh *WorkingHours, opts ...GateOption) cron.JobWrapper {
	return gate.OnDuty(wh, opts...)
}

// Starts returns a cron.Schedule that fires whenever a working period begins.
func Starts(wh *WorkingHours, opts ...GateOption) cron.Schedule {
	return gate.Starts(wh, opts...)
}

// WithLogger sets the logger used to report skipped runs.
func WithLogger(l *slog.Logger) GateOption {
	return gate.WithLogger(l)
}

// WithUTC evaluates gates in UTC instead of time.Local.
func WithUTC(enabled bool) GateOption {
	return gate.WithUTC(enabled)
}
