// Package schedule parses and normalizes weekly working-hours schedules.
//
// This package includes:
//   - Week, an immutable table of seven DayRules indexed by time.Weekday
//   - DayRule for always-on, always-off, and interval-set days
//   - Interval for inclusive minute-of-day windows
//   - Parse() for the flexible raw schedule forms (bool, string, []string, []any)
//
// Most users should import the root package github.com/jdziat/working-hours
// which re-exports these types and functions.
package schedule
