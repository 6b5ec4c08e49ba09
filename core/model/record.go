package model

import (
	"fmt"
	"time"
)

// Values accepted in the applies_to field of a closed slot record.
const (
	AppliesAllDays      = "all_days"
	AppliesSpecificDate = "specific_date"
	AppliesWeekdays     = "weekdays"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ClosedSlot is the wire representation of a blocked interval as submitted by
// clients and persisted in saved documents.
type ClosedSlot struct {
	StartHour    int    `json:"start_hour"`
	StartMinute  int    `json:"start_minute"`
	EndHour      int    `json:"end_hour"`
	EndMinute    int    `json:"end_minute"`
	AppliesTo    string `json:"applies_to"`
	SpecificDate string `json:"specific_date,omitempty"`
	Weekdays     []int  `json:"weekdays,omitempty"`
}

// ToBlockedInterval validates the record and converts it to the core
// representation. All malformed-input rejection for blocked intervals happens
// here, before the slot reaches the scheduling engine.
func (c ClosedSlot) ToBlockedInterval() (BlockedInterval, error) {
	rec, err := c.recurrence()
	if err != nil {
		return BlockedInterval{}, err
	}
	b := BlockedInterval{
		StartMinute: c.StartHour*60 + c.StartMinute,
		EndMinute:   c.EndHour*60 + c.EndMinute,
		Recurrence:  rec,
	}
	if err := b.Validate(); err != nil {
		return BlockedInterval{}, err
	}
	return b, nil
}

func (c ClosedSlot) recurrence() (Recurrence, error) {
	switch c.AppliesTo {
	case AppliesAllDays:
		return EveryDay{}, nil
	case AppliesSpecificDate:
		if c.SpecificDate == "" {
			return nil, fmt.Errorf("closed slot: specific_date is required for applies_to=%s", AppliesSpecificDate)
		}
		d, err := time.Parse(DateLayout, c.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("closed slot: invalid specific_date %q: %w", c.SpecificDate, err)
		}
		return SpecificDate{Date: d}, nil
	case AppliesWeekdays:
		if len(c.Weekdays) == 0 {
			return nil, fmt.Errorf("closed slot: weekdays are required for applies_to=%s", AppliesWeekdays)
		}
		days := make(map[int]bool, len(c.Weekdays))
		for _, d := range c.Weekdays {
			days[d] = true
		}
		return WeekdaySet{Days: days}, nil
	default:
		return nil, fmt.Errorf("closed slot: unknown applies_to %q", c.AppliesTo)
	}
}

// ClosedSlotsToIntervals converts and validates a batch of wire records.
func ClosedSlotsToIntervals(slots []ClosedSlot) ([]BlockedInterval, error) {
	intervals := make([]BlockedInterval, 0, len(slots))
	for i, s := range slots {
		b, err := s.ToBlockedInterval()
		if err != nil {
			return nil, fmt.Errorf("closed slot %d: %w", i, err)
		}
		intervals = append(intervals, b)
	}
	return intervals, nil
}
