package gate

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdziat/working-hours/pkg/hours"
)

// now is replaced in tests.
var now = time.Now

// OnDuty returns a cron.JobWrapper that runs the wrapped job only while wh is
// on duty. Runs outside working hours are skipped and logged at debug level.
func OnDuty(wh *hours.WorkingHours, opts ...Option) cron.JobWrapper {
	cfg := newConfig(opts)
	return func(j cron.Job) cron.Job {
		return cron.FuncJob(func() {
			t := now()
			if !wh.Test(t, hours.UTC(cfg.UTC)) {
				cfg.Logger.Debug("skipping job outside working hours", "time", t, "utc", cfg.UTC)
				return
			}
			j.Run()
		})
	}
}

// startSchedule fires at the beginning of every working period.
type startSchedule struct {
	hours *hours.WorkingHours
	utc   bool
}

// Starts returns a cron.Schedule whose activations are the moments wh turns
// on duty. A schedule without transitions never fires.
func Starts(wh *hours.WorkingHours, opts ...Option) cron.Schedule {
	cfg := newConfig(opts)
	return &startSchedule{hours: wh, utc: cfg.UTC}
}

func (s *startSchedule) Next(from time.Time) time.Time {
	return s.hours.NextStart(from, hours.UTC(s.utc))
}
