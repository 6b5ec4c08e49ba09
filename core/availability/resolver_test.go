package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// 2024-02-15 is a Thursday, Monday-indexed weekday 3.
var thursday = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

func allDay(startH, endH int) model.BlockedInterval {
	return model.BlockedInterval{StartMinute: startH * 60, EndMinute: endH * 60, Recurrence: model.EveryDay{}}
}

/*
TestResolve_DailyBlocks covers the reference day layout: sleep, lunch and
dinner blocked every day leaves three free intervals of 4h, 7h and 1h.
*/
func TestResolve_DailyBlocks(t *testing.T) {
	blocked := []model.BlockedInterval{
		allDay(0, 8),
		allDay(22, 24),
		allDay(12, 13),
		allDay(20, 21),
	}
	got := Resolve(thursday, blocked)
	want := []model.FreeInterval{
		{Start: 8 * 60, End: 12 * 60},
		{Start: 13 * 60, End: 20 * 60},
		{Start: 21 * 60, End: 22 * 60},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("free intervals = %v, want %v", got, want)
	}
	if d := got[0].DurationHours(); d != 4 {
		t.Fatalf("first interval %vh, want 4h", d)
	}
	if d := got[1].DurationHours(); d != 7 {
		t.Fatalf("second interval %vh, want 7h", d)
	}
}

func TestResolve_NoBlocks(t *testing.T) {
	got := Resolve(thursday, nil)
	want := []model.FreeInterval{{Start: 0, End: model.MinutesPerDay}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("free intervals = %v, want full day", got)
	}
}

func TestResolve_FullyBlockedDay(t *testing.T) {
	got := Resolve(thursday, []model.BlockedInterval{allDay(0, 24)})
	if len(got) != 0 {
		t.Fatalf("expected no free intervals, got %v", got)
	}
}

func TestResolve_DropsShortFragments(t *testing.T) {
	// Leaves a 29 minute gap between the two blocks.
	blocked := []model.BlockedInterval{
		allDay(0, 10),
		{StartMinute: 10*60 + 29, EndMinute: model.MinutesPerDay, Recurrence: model.EveryDay{}},
	}
	got := Resolve(thursday, blocked)
	if len(got) != 0 {
		t.Fatalf("29 minute fragment should be dropped, got %v", got)
	}
}

func TestResolve_KeepsMinimumFragment(t *testing.T) {
	blocked := []model.BlockedInterval{
		allDay(0, 10),
		{StartMinute: 10*60 + 30, EndMinute: model.MinutesPerDay, Recurrence: model.EveryDay{}},
	}
	got := Resolve(thursday, blocked)
	want := []model.FreeInterval{{Start: 600, End: 630}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("free intervals = %v, want %v", got, want)
	}
}

func TestResolve_OverlappingBlocks(t *testing.T) {
	blocked := []model.BlockedInterval{
		allDay(0, 12),
		allDay(10, 14),
		allDay(20, 24),
	}
	got := Resolve(thursday, blocked)
	want := []model.FreeInterval{{Start: 14 * 60, End: 20 * 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("free intervals = %v, want %v", got, want)
	}
}

func TestResolve_SpecificDate(t *testing.T) {
	blocked := []model.BlockedInterval{
		{StartMinute: 0, EndMinute: 12 * 60, Recurrence: model.SpecificDate{Date: thursday}},
	}
	got := Resolve(thursday, blocked)
	want := []model.FreeInterval{{Start: 12 * 60, End: model.MinutesPerDay}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("on the matching date: %v, want %v", got, want)
	}

	other := thursday.AddDate(0, 0, 1)
	got = Resolve(other, blocked)
	want = []model.FreeInterval{{Start: 0, End: model.MinutesPerDay}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("on another date: %v, want full day", got)
	}
}

func TestResolve_WeekdaySet(t *testing.T) {
	// Saturday=5 and Sunday=6 mornings blocked.
	blocked := []model.BlockedInterval{
		{StartMinute: 8 * 60, EndMinute: 10 * 60, Recurrence: model.WeekdaySet{Days: map[int]bool{5: true, 6: true}}},
	}
	saturday := time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)
	got := Resolve(saturday, blocked)
	want := []model.FreeInterval{
		{Start: 0, End: 8 * 60},
		{Start: 10 * 60, End: model.MinutesPerDay},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("saturday: %v, want %v", got, want)
	}

	if got := Resolve(thursday, blocked); len(got) != 1 || got[0] != (model.FreeInterval{Start: 0, End: model.MinutesPerDay}) {
		t.Fatalf("thursday should be unaffected, got %v", got)
	}
}

func TestResolve_Pure(t *testing.T) {
	blocked := []model.BlockedInterval{allDay(0, 8), allDay(12, 13), allDay(22, 24)}
	first := Resolve(thursday, blocked)
	second := Resolve(thursday, blocked)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution is not deterministic: %v vs %v", first, second)
	}
}

func TestResolve_DisjointAndSorted(t *testing.T) {
	blocked := []model.BlockedInterval{
		allDay(3, 5),
		allDay(9, 11),
		allDay(4, 10),
		allDay(18, 19),
	}
	got := Resolve(thursday, blocked)
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Fatalf("intervals overlap or unsorted: %v", got)
		}
	}
}

func TestMaxDuration(t *testing.T) {
	daily := []model.BlockedInterval{allDay(0, 20)}
	if d := MaxDuration(thursday, daily, 7); d != 4 {
		t.Fatalf("max duration = %v, want 4", d)
	}
	if d := MaxDuration(thursday, []model.BlockedInterval{allDay(0, 24)}, 7); d != 0 {
		t.Fatalf("fully blocked window should report 0, got %v", d)
	}

	// A weekday rule can make one day of the window longer than the rest.
	weekend := []model.BlockedInterval{
		{StartMinute: 0, EndMinute: 20 * 60, Recurrence: model.WeekdaySet{Days: map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}}},
		allDay(22, 24),
	}
	if d := MaxDuration(thursday, weekend, 7); d != 22 {
		t.Fatalf("max duration = %v, want 22 from the weekend days", d)
	}
}
