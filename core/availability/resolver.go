package availability

import (
	"sort"
	"time"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// MinFreeMinutes is the shortest free fragment worth reporting. Anything
// smaller is discarded during resolution.
const MinFreeMinutes = 30

// Resolve computes the disjoint free intervals left on date after subtracting
// every blocked interval whose recurrence rule matches it. The result is
// sorted ascending by start, each fragment at least MinFreeMinutes long.
// Blocked intervals are assumed validated; the function is pure.
func Resolve(date time.Time, blocked []model.BlockedInterval) []model.FreeInterval {
	matched := make([]model.BlockedInterval, 0, len(blocked))
	for _, b := range blocked {
		if b.Recurrence.AppliesOn(date) {
			matched = append(matched, b)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartMinute < matched[j].StartMinute
	})

	free := []model.FreeInterval{{Start: 0, End: model.MinutesPerDay}}
	for _, b := range matched {
		free = subtract(free, b)
	}

	out := free[:0]
	for _, f := range free {
		if f.End-f.Start >= MinFreeMinutes {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// subtract removes one blocked range from every interval in free, splitting
// overlapped intervals into up to two remainders.
func subtract(free []model.FreeInterval, b model.BlockedInterval) []model.FreeInterval {
	next := make([]model.FreeInterval, 0, len(free)+1)
	for _, f := range free {
		if b.EndMinute <= f.Start || b.StartMinute >= f.End {
			next = append(next, f)
			continue
		}
		if f.Start < b.StartMinute {
			next = append(next, model.FreeInterval{Start: f.Start, End: b.StartMinute})
		}
		if b.EndMinute < f.End {
			next = append(next, model.FreeInterval{Start: b.EndMinute, End: f.End})
		}
	}
	return next
}

// MaxDuration returns the longest free interval duration, in hours, observed
// on any day in [1, lookaheadDays] counted from start. Used by the
// feasibility pre-pass to detect session lengths that can never fit.
func MaxDuration(start time.Time, blocked []model.BlockedInterval, lookaheadDays int) float64 {
	maxDur := 0.0
	for day := 1; day <= lookaheadDays; day++ {
		date := start.AddDate(0, 0, day-1)
		for _, f := range Resolve(date, blocked) {
			if d := f.DurationHours(); d > maxDur {
				maxDur = d
			}
		}
	}
	return maxDur
}
