package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec, ms int) time.Time {
	return time.Date(2025, 6, 2, hour, min, sec, ms*int(time.Millisecond), time.UTC)
}

func collect(start, end time.Time, slotMinutes int) []Interval {
	var out []Interval
	for iv := range Slots(start, end, slotMinutes) {
		out = append(out, iv)
	}
	return out
}

func TestRoundDown(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already aligned", at(9, 0, 0, 0), at(9, 0, 0, 0)},
		{"half hour aligned", at(9, 30, 0, 0), at(9, 30, 0, 0)},
		{"floors minutes", at(10, 17, 0, 0), at(10, 0, 0, 0)},
		{"floors to half hour", at(10, 44, 0, 0), at(10, 30, 0, 0)},
		{"zeroes seconds", at(9, 30, 12, 0), at(9, 30, 0, 0)},
		{"zeroes millis", at(9, 0, 0, 450), at(9, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(RoundDown(tt.in, 30)), "got %v", RoundDown(tt.in, 30))
		})
	}
}

func TestSlots(t *testing.T) {
	t.Run("exact multiple yields duration over slot size slots", func(t *testing.T) {
		slots := collect(at(10, 0, 0, 0), at(12, 0, 0, 0), 30)
		assert.Len(t, slots, 4)
		for i, s := range slots {
			assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
			if i > 0 {
				assert.True(t, s.Start.Equal(slots[i-1].End), "slots must be contiguous")
			}
		}
		assert.True(t, slots[0].Start.Equal(at(10, 0, 0, 0)))
		assert.True(t, slots[3].End.Equal(at(12, 0, 0, 0)))
	})

	t.Run("trailing partial slot is dropped", func(t *testing.T) {
		slots := collect(at(10, 0, 0, 0), at(11, 15, 0, 0), 30)
		assert.Len(t, slots, 2)
		assert.True(t, slots[1].End.Equal(at(11, 0, 0, 0)))
	})

	t.Run("misaligned start is floored to the grid", func(t *testing.T) {
		slots := collect(at(10, 17, 0, 0), at(11, 0, 0, 0), 30)
		assert.Len(t, slots, 2)
		assert.True(t, slots[0].Start.Equal(at(10, 0, 0, 0)))
	})

	t.Run("empty when start equals end", func(t *testing.T) {
		assert.Empty(t, collect(at(10, 0, 0, 0), at(10, 0, 0, 0), 30))
	})

	t.Run("empty when start after end", func(t *testing.T) {
		assert.Empty(t, collect(at(11, 0, 0, 0), at(10, 0, 0, 0), 30))
	})

	t.Run("empty when no full slot fits", func(t *testing.T) {
		assert.Empty(t, collect(at(10, 0, 0, 0), at(10, 20, 0, 0), 30))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := Slots(at(10, 0, 0, 0), at(11, 0, 0, 0), 30)
		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}
		assert.Equal(t, 2, first)
		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		n := 0
		for range Slots(at(10, 0, 0, 0), at(14, 0, 0, 0), 30) {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: at(10, 0, 0, 0), End: at(11, 0, 0, 0)}

	tests := []struct {
		name string
		b    Interval
		want bool
	}{
		{"strictly contained", Interval{Start: at(10, 15, 0, 0), End: at(10, 45, 0, 0)}, true},
		{"partial overlap left", Interval{Start: at(9, 30, 0, 0), End: at(10, 30, 0, 0)}, true},
		{"partial overlap right", Interval{Start: at(10, 30, 0, 0), End: at(11, 30, 0, 0)}, true},
		{"identical", a, true},
		{"adjacent before", Interval{Start: at(9, 0, 0, 0), End: at(10, 0, 0, 0)}, false},
		{"adjacent after", Interval{Start: at(11, 0, 0, 0), End: at(12, 0, 0, 0)}, false},
		{"disjoint", Interval{Start: at(13, 0, 0, 0), End: at(14, 0, 0, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestIntervalCovers(t *testing.T) {
	shift := Interval{Start: at(9, 30, 0, 0), End: at(11, 0, 0, 0)}

	assert.True(t, shift.Covers(Interval{Start: at(10, 0, 0, 0), End: at(10, 30, 0, 0)}))
	assert.True(t, shift.Covers(shift))
	assert.False(t, shift.Covers(Interval{Start: at(10, 30, 0, 0), End: at(11, 30, 0, 0)}))
	assert.False(t, shift.Covers(Interval{Start: at(9, 0, 0, 0), End: at(9, 30, 0, 0)}))
}

func TestIsMultipleOf(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"one slot", at(10, 0, 0, 0), at(10, 30, 0, 0), true},
		{"three slots", at(10, 0, 0, 0), at(11, 30, 0, 0), true},
		{"not a multiple", at(10, 0, 0, 0), at(10, 45, 0, 0), false},
		{"zero duration", at(10, 0, 0, 0), at(10, 0, 0, 0), false},
		{"negative duration", at(11, 0, 0, 0), at(10, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMultipleOf(tt.start, tt.end, 30))
		})
	}
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"on the hour", at(9, 0, 0, 0), true},
		{"on the half hour", at(9, 30, 0, 0), true},
		{"quarter past", at(9, 15, 0, 0), false},
		{"stray second", at(9, 0, 1, 0), false},
		{"stray millisecond", at(9, 30, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAligned(tt.in, 30))
		})
	}
}
