// Package timeslot holds the pure interval math behind shift and
// booking discretization. All intervals are half-open [start, end):
// touching endpoints never overlap.
package timeslot

import (
	"iter"
	"time"
)

const DefaultSlotMinutes = 30

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps is the strict half-open overlap test. Adjacent intervals
// sharing an endpoint do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Covers reports whether iv fully contains other.
func (iv Interval) Covers(other Interval) bool {
	return !iv.Start.After(other.Start) && !iv.End.Before(other.End)
}

// Equal reports exact endpoint equality.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// RoundDown floors t's minute component to the nearest multiple of
// slotMinutes, zeroing seconds and sub-second precision.
func RoundDown(t time.Time, slotMinutes int) time.Time {
	minute := t.Minute() - t.Minute()%slotMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}

// Slots yields the contiguous slotMinutes-sized intervals starting at
// RoundDown(start) whose ends do not exceed end. A trailing partial
// interval is dropped: whole slots only. The sequence is empty when
// start >= end or when no full slot fits, and it is restartable.
func Slots(start, end time.Time, slotMinutes int) iter.Seq[Interval] {
	size := time.Duration(slotMinutes) * time.Minute
	return func(yield func(Interval) bool) {
		if !start.Before(end) {
			return
		}
		for cur := RoundDown(start, slotMinutes); !cur.Add(size).After(end); cur = cur.Add(size) {
			if !yield(Interval{Start: cur, End: cur.Add(size)}) {
				return
			}
		}
	}
}

// IsMultipleOf reports whether end-start is a strictly positive
// multiple of the slot size.
func IsMultipleOf(start, end time.Time, slotMinutes int) bool {
	size := time.Duration(slotMinutes) * time.Minute
	d := end.Sub(start)
	return d > 0 && d%size == 0
}

// IsAligned reports whether t sits exactly on the discretization grid.
func IsAligned(t time.Time, slotMinutes int) bool {
	return t.Minute()%slotMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
