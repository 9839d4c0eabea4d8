package workinghours_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	workinghours "github.com/jdziat/working-hours"
)

func mon(hour, minute int) time.Time {
	return time.Date(2017, 3, 20, hour, minute, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// TestFacadeNew - construction through the root package
// ---------------------------------------------------------------------------

func TestFacadeNew_WeekdaySchedule(t *testing.T) {
	wh, err := workinghours.New([]any{false, "09:00-17:00", "09:00-17:00", "09:00-17:00", "09:00-17:00", "09:00-17:00", false})
	require.NoError(t, err)

	assert.False(t, wh.Test(mon(8, 59), workinghours.UTC(true)))
	assert.True(t, wh.Test(mon(9, 0), workinghours.UTC(true)))
	assert.True(t, wh.Test(mon(17, 0), workinghours.UTC(true)))
	assert.False(t, wh.Test(mon(17, 1), workinghours.UTC(true)))
	assert.False(t, wh.Test(time.Date(2017, 3, 19, 12, 0, 0, 0, time.UTC), workinghours.UTC(true)))
}

func TestFacadeNew_Errors(t *testing.T) {
	_, err := workinghours.New("9:00-8:00")
	assert.ErrorIs(t, err, workinghours.ErrEndBeforeBegin)

	_, err = workinghours.New("9-17")
	assert.ErrorIs(t, err, workinghours.ErrInvalidClock)

	_, err = workinghours.New("09:00")
	assert.ErrorIs(t, err, workinghours.ErrInvalidPeriod)

	_, err = workinghours.New([]string{})
	assert.ErrorIs(t, err, workinghours.ErrEmptyPeriods)

	_, err = workinghours.New("24:00-24:30")
	assert.ErrorIs(t, err, workinghours.ErrClockOutOfRange)

	_, err = workinghours.New(struct{}{})
	assert.ErrorIs(t, err, workinghours.ErrInvalidDay)

	var dayErr *workinghours.DayError
	assert.True(t, errors.As(err, &dayErr))
}

func TestFacadeNew_FromRules(t *testing.T) {
	morning, err := workinghours.Periods(workinghours.Interval{Begin: 6 * 60, End: 9 * 60})
	require.NoError(t, err)

	week := workinghours.Every(morning)
	week[0] = workinghours.Off()
	week[6] = workinghours.On()

	wh := workinghours.FromWeek(week)
	assert.True(t, wh.Test(mon(7, 30), workinghours.UTC(true)))
	assert.False(t, wh.Test(time.Date(2017, 3, 19, 7, 30, 0, 0, time.UTC), workinghours.UTC(true)))
	assert.True(t, wh.Test(time.Date(2017, 3, 25, 23, 59, 0, 0, time.UTC), workinghours.UTC(true)))

	parsed, err := workinghours.Parse([]workinghours.DayRule{
		workinghours.Off(), morning, morning, morning, morning, morning, workinghours.On(),
	})
	require.NoError(t, err)
	assert.Equal(t, week, parsed)
	assert.Equal(t, workinghours.IntervalSet, parsed[1].Kind())
}

func TestFacadeOptions(t *testing.T) {
	opts := workinghours.NewOptions()
	workinghours.UTC(true).Apply(opts)
	assert.True(t, opts.UTC)
}

// ---------------------------------------------------------------------------
// TestFacadeGate - cron integration through the root package
// ---------------------------------------------------------------------------

func TestFacadeGate_Starts(t *testing.T) {
	wh, err := workinghours.New("09:00-17:00")
	require.NoError(t, err)

	next := workinghours.Starts(wh, workinghours.WithUTC(true)).Next(mon(10, 0))
	assert.Equal(t, time.Date(2017, 3, 21, 9, 0, 0, 0, time.UTC), next)
}

func TestFacadeGate_OnDutyAlwaysOff(t *testing.T) {
	wh, err := workinghours.New(false)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ran := false
	job := cron.NewChain(workinghours.OnDuty(wh, workinghours.WithLogger(logger))).Then(cron.FuncJob(func() { ran = true }))
	job.Run()

	assert.False(t, ran)
	assert.Contains(t, buf.String(), "outside working hours")
}
