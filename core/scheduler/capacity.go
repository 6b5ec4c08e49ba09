package scheduler

import "github.com/prakharVirus1289/calender-scheduler/core/model"

// CapacityRecord tracks the remaining room of one free interval while
// sessions are carved out of a day. Records are built fresh every morning
// and discarded at day end; they are never shared across days.
type CapacityRecord struct {
	Interval       model.FreeInterval
	RemainingStart int
	RemainingHours float64
}

// newDayCapacity builds one record per free interval, in start order.
func newDayCapacity(free []model.FreeInterval) []*CapacityRecord {
	records := make([]*CapacityRecord, 0, len(free))
	for _, f := range free {
		records = append(records, &CapacityRecord{
			Interval:       f,
			RemainingStart: f.Start,
			RemainingHours: f.DurationHours(),
		})
	}
	return records
}

// CanFit reports whether the record still has room for a session of the
// given length.
func (r *CapacityRecord) CanFit(hours float64) bool {
	return r.RemainingHours >= hours
}

// Allocate carves a session out of the record and returns its start and end
// minute. Fractional minutes are truncated, not rounded; the buffer is
// reserved after the session so the next allocation cannot start inside it.
func (r *CapacityRecord) Allocate(hours float64, bufferMinutes int) (start, end int) {
	start = r.RemainingStart
	end = start + int(hours*60)
	r.RemainingStart = end + bufferMinutes
	r.RemainingHours -= hours + float64(bufferMinutes)/60
	return start, end
}

// firstFit returns the first record, in interval start order, that can hold
// a session of the given length, or nil when none can.
func firstFit(records []*CapacityRecord, hours float64) *CapacityRecord {
	for _, r := range records {
		if r.CanFit(hours) {
			return r
		}
	}
	return nil
}
