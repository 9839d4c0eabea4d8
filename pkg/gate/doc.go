// Package gate ties working hours to github.com/robfig/cron/v3.
//
// OnDuty is a cron.JobWrapper that lets a job run only inside working hours,
// and Starts adapts a WorkingHours into a cron.Schedule that fires each time
// a working period begins.
package gate
