package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse normalizes a raw schedule into a Week.
//
// The input is either a sequence of exactly seven day values (index 0 is
// Sunday) or a single day value applied to every day. Sequences of any other
// length are treated as a single day value. Accepted sequence types are
// []any, []string, []bool, []DayRule and Week.
//
// A day value is true (always on), false (always off), a string of
// comma-separated "hh:mm-hh:mm" periods, a list of such strings, or a DayRule.
// Parse fails on the first invalid day; no partial Week is returned.
func Parse(input any) (Week, error) {
	if w, ok := input.(Week); ok {
		return w, nil
	}

	days, ok := weekValues(input)
	if !ok {
		days = make([]any, DaysPerWeek)
		for i := range days {
			days[i] = input
		}
	}

	var w Week
	for i, v := range days {
		rule, err := ParseDay(v)
		if err != nil {
			return Week{}, &DayError{Day: time.Weekday(i), Err: err}
		}
		w[i] = rule
	}
	return w, nil
}

// weekValues returns the per-day values of input when it is a seven element
// sequence.
func weekValues(input any) ([]any, bool) {
	var out []any
	switch v := input.(type) {
	case []any:
		out = v
	case []string:
		out = make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
	case []bool:
		out = make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
	case []DayRule:
		out = make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
	default:
		return nil, false
	}
	if len(out) != DaysPerWeek {
		return nil, false
	}
	return out, true
}

// ParseDay normalizes a single day value into a DayRule.
func ParseDay(v any) (DayRule, error) {
	switch day := v.(type) {
	case bool:
		if day {
			return On(), nil
		}
		return Off(), nil
	case DayRule:
		return day, nil
	case string:
		return parsePeriodList([]string{day})
	case []string:
		return parsePeriodList(day)
	case []any:
		periods := make([]string, 0, len(day))
		for i, p := range day {
			s, ok := p.(string)
			if !ok {
				return DayRule{}, fmt.Errorf("%w: entry %d is %T", ErrInvalidDay, i, p)
			}
			periods = append(periods, s)
		}
		return parsePeriodList(periods)
	default:
		return DayRule{}, fmt.Errorf("%w: got %T", ErrInvalidDay, v)
	}
}

func parsePeriodList(entries []string) (DayRule, error) {
	if len(entries) == 0 {
		return DayRule{}, ErrEmptyPeriods
	}
	var intervals []Interval
	for _, entry := range entries {
		for _, token := range strings.Split(entry, ",") {
			iv, err := ParsePeriod(token)
			if err != nil {
				return DayRule{}, err
			}
			intervals = append(intervals, iv)
		}
	}
	return DayRule{kind: IntervalSet, intervals: intervals}, nil
}

// ParsePeriod parses an "hh:mm-hh:mm" token into an Interval.
func ParsePeriod(s string) (Interval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	begin, err := ParseClock(parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("begin of %q: %w", s, err)
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return Interval{}, fmt.Errorf("end of %q: %w", s, err)
	}

	if end < begin {
		return Interval{}, fmt.Errorf("%w: %q", ErrEndBeforeBegin, s)
	}
	return Interval{Begin: begin, End: end}, nil
}

// ParseClock parses "hh:mm" into minutes since midnight. Hours and minutes
// need not be zero padded but must be plain integers; surrounding whitespace
// is rejected.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(mm, ":") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q", ErrInvalidClock, hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: minute %q", ErrInvalidClock, mm)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrClockOutOfRange, s)
	}
	return hour*60 + minute, nil
}
