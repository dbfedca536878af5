package shows

import "time"

// Partition splits shows into upcoming and past relative to now, keeping
// the relative order of the input. A show is upcoming iff it starts
// strictly after now; a show starting exactly at now is past. Every input
// lands in exactly one of the two slices.
func Partition[S any](items []S, startAt func(S) time.Time, now time.Time) (upcoming, past []S) {
	upcoming = make([]S, 0, len(items))
	past = make([]S, 0, len(items))
	for _, item := range items {
		if startAt(item).After(now) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return upcoming, past
}
