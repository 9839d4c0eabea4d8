package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DaysPerWeek is the number of DayRules in a Week.
	DaysPerWeek = 7

	// MinutesPerDay bounds every time-of-day offset to [0, MinutesPerDay).
	MinutesPerDay = 24 * 60
)

// Kind identifies which variant a DayRule holds.
type Kind int

const (
	// AlwaysOff rejects every instant of the day. It is the zero Kind.
	AlwaysOff Kind = iota
	// AlwaysOn accepts every instant of the day.
	AlwaysOn
	// IntervalSet accepts instants falling inside any of the day's intervals.
	IntervalSet
)

func (k Kind) String() string {
	switch k {
	case AlwaysOff:
		return "always-off"
	case AlwaysOn:
		return "always-on"
	case IntervalSet:
		return "interval-set"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Interval is an inclusive window of minutes since midnight.
// End is never before Begin; intervals do not wrap past midnight.
type Interval struct {
	Begin int
	End   int
}

// Contains reports whether minute lies in [Begin, End].
func (i Interval) Contains(minute int) bool {
	return minute >= i.Begin && minute <= i.End
}

func (i Interval) String() string {
	return formatClock(i.Begin) + "-" + formatClock(i.End)
}

func (i Interval) validate() error {
	if i.Begin < 0 || i.Begin >= MinutesPerDay || i.End < 0 || i.End >= MinutesPerDay {
		return fmt.Errorf("%w: %d-%d", ErrClockOutOfRange, i.Begin, i.End)
	}
	if i.End < i.Begin {
		return fmt.Errorf("%w: %s", ErrEndBeforeBegin, i)
	}
	return nil
}

// DayRule is the policy for a single weekday. The zero value is AlwaysOff.
//
// A DayRule is immutable: the interval slice is owned by the rule and only
// copies of it are handed out.
type DayRule struct {
	kind      Kind
	intervals []Interval
}

// On returns a rule that matches the whole day.
func On() DayRule {
	return DayRule{kind: AlwaysOn}
}

// Off returns a rule that matches nothing.
func Off() DayRule {
	return DayRule{kind: AlwaysOff}
}

// Periods returns an IntervalSet rule from the given intervals.
// Every interval must lie within a single day with End >= Begin.
func Periods(intervals ...Interval) (DayRule, error) {
	if len(intervals) == 0 {
		return DayRule{}, ErrEmptyPeriods
	}
	for _, iv := range intervals {
		if err := iv.validate(); err != nil {
			return DayRule{}, err
		}
	}
	owned := make([]Interval, len(intervals))
	copy(owned, intervals)
	return DayRule{kind: IntervalSet, intervals: owned}, nil
}

// Kind returns the rule variant.
func (d DayRule) Kind() Kind {
	return d.kind
}

// Intervals returns a copy of the rule's intervals, or nil unless the rule is
// an IntervalSet.
func (d DayRule) Intervals() []Interval {
	if len(d.intervals) == 0 {
		return nil
	}
	out := make([]Interval, len(d.intervals))
	copy(out, d.intervals)
	return out
}

// Matches reports whether minute (since midnight) is on duty under this rule.
func (d DayRule) Matches(minute int) bool {
	switch d.kind {
	case AlwaysOn:
		return true
	case IntervalSet:
		for _, iv := range d.intervals {
			if iv.Contains(minute) {
				return true
			}
		}
	}
	return false
}

// Value returns the canonical raw form of the rule: true, false, or a
// comma-separated period string. Parsing it yields an equal rule.
func (d DayRule) Value() any {
	switch d.kind {
	case AlwaysOn:
		return true
	case IntervalSet:
		return d.String()
	default:
		return false
	}
}

func (d DayRule) String() string {
	switch d.kind {
	case AlwaysOn:
		return "true"
	case IntervalSet:
		parts := make([]string, len(d.intervals))
		for i, iv := range d.intervals {
			parts[i] = iv.String()
		}
		return strings.Join(parts, ",")
	default:
		return "false"
	}
}

// Week holds one DayRule per weekday, indexed by time.Weekday
// (0 = Sunday ... 6 = Saturday).
type Week [DaysPerWeek]DayRule

// Every returns a Week applying rule to all seven days.
func Every(rule DayRule) Week {
	var w Week
	for i := range w {
		w[i] = rule
	}
	return w
}

// Day returns the rule for the given weekday.
func (w Week) Day(day time.Weekday) DayRule {
	return w[day]
}

// Contains reports whether minute of the given weekday is on duty.
func (w Week) Contains(day time.Weekday, minute int) bool {
	return w[day].Matches(minute)
}

// Values returns the canonical raw form of the week, one entry per day.
func (w Week) Values() []any {
	out := make([]any, DaysPerWeek)
	for i, d := range w {
		out[i] = d.Value()
	}
	return out
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
