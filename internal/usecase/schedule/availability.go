package schedule

import (
	"context"
	"time"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/timeslot"
)

type ComputeAvailability struct {
	repo        domain.Repository
	slotMinutes int
}

func NewComputeAvailability(repo domain.Repository, slotMinutes int) *ComputeAvailability {
	if slotMinutes <= 0 {
		slotMinutes = timeslot.DefaultSlotMinutes
	}
	return &ComputeAvailability{repo: repo, slotMinutes: slotMinutes}
}

// Execute computes per-slot capacity for [start, end) from exactly two
// fetches: the covering shifts and the confirmed bookings. Per-slot
// queries are never issued.
func (uc *ComputeAvailability) Execute(
	ctx context.Context,
	start, end time.Time,
) (*domain.Availability, error) {

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	shifts, err := uc.repo.ListShiftsIntersecting(ctx, start, end)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListConfirmedBookingsStarting(ctx, start, end)
	if err != nil {
		return nil, err
	}

	slots := []domain.Slot{}
	available := []domain.Slot{}

	for iv := range timeslot.Slots(start, end, uc.slotMinutes) {
		shiftCount := 0
		for _, s := range shifts {
			// A shift counts only when it fully contains the slot.
			if (timeslot.Interval{Start: s.StartTime, End: s.EndTime}).Covers(iv) {
				shiftCount++
			}
		}

		bookingCount := 0
		for _, b := range bookings {
			// Exact slot match, not overlap.
			if (timeslot.Interval{Start: b.StartTime, End: b.EndTime}).Equal(iv) {
				bookingCount++
			}
		}

		capacity := shiftCount - bookingCount

		slot := domain.Slot{
			Start:             iv.Start,
			End:               iv.End,
			ShiftCount:        shiftCount,
			BookingCount:      bookingCount,
			AvailableCapacity: capacity,
			IsAvailable:       capacity > 0,
		}

		slots = append(slots, slot)
		if slot.IsAvailable {
			available = append(available, slot)
		}
	}

	return &domain.Availability{
		Slots:          slots,
		AvailableSlots: available,
	}, nil
}
