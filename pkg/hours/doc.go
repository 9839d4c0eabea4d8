// Package hours evaluates instants against a normalized weekly schedule.
//
// A WorkingHours is built once from raw schedule input and is immutable
// afterwards, so a single value can be shared across goroutines. It also
// decodes from JSON and YAML, which lets a schedule live inside a caller's
// configuration struct.
//
// Most users should import the root package github.com/jdziat/working-hours
// which re-exports these types and functions.
package hours
