package hours

import (
	"strings"
	"time"

	"github.com/jdziat/working-hours/pkg/schedule"
)

// WorkingHours answers whether an instant falls inside a weekly schedule.
// The zero value is a schedule that is never on duty.
type WorkingHours struct {
	week schedule.Week
}

// New parses a raw schedule (see schedule.Parse) into a WorkingHours.
func New(input any) (*WorkingHours, error) {
	week, err := schedule.Parse(input)
	if err != nil {
		return nil, err
	}
	return &WorkingHours{week: week}, nil
}

// FromWeek wraps an already normalized Week.
func FromWeek(week schedule.Week) *WorkingHours {
	return &WorkingHours{week: week}
}

// Week returns the normalized schedule.
func (w *WorkingHours) Week() schedule.Week {
	return w.week
}

// Test reports whether t is on duty. By default the weekday and time of day
// are read in time.Local; pass UTC(true) to read them in UTC.
func (w *WorkingHours) Test(t time.Time, opts ...Option) bool {
	return w.test(t, resolve(opts))
}

func (w *WorkingHours) test(t time.Time, o *Options) bool {
	if o.UTC {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	return w.week.Contains(t.Weekday(), t.Hour()*60+t.Minute())
}

// String renders the schedule as "Sun=false Mon=09:00-17:00 ...".
func (w *WorkingHours) String() string {
	var b strings.Builder
	for i, rule := range w.week {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(time.Weekday(i).String()[:3])
		b.WriteByte('=')
		b.WriteString(rule.String())
	}
	return b.String()
}
