package hours

import (
	"time"
)

// searchDays bounds the search in wall-clock days of the evaluation zone.
// A calendar week spanning a DST change is longer or shorter than
// 7*24 hours, so the bound is computed with AddDate rather than a minute count.
const searchDays = 8

// NextStart returns the first minute boundary after from at which the
// schedule turns on duty, that is t where Test(t) holds and Test(t-1m) does
// not. It returns the zero time when the schedule never changes state.
func (w *WorkingHours) NextStart(from time.Time, opts ...Option) time.Time {
	o := resolve(opts)

	if o.UTC {
		from = from.UTC()
	} else {
		from = from.Local()
	}
	limit := from.AddDate(0, 0, searchDays)

	cur := from.Truncate(time.Minute).Add(time.Minute)
	prev := w.test(cur.Add(-time.Minute), o)
	for !cur.After(limit) {
		on := w.test(cur, o)
		if on && !prev {
			return cur
		}
		prev = on
		cur = cur.Add(time.Minute)
	}
	return time.Time{}
}
