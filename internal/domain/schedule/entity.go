package schedule

import (
	"time"

	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CancelBooking applies the client-cancellation rules and marks the
// booking cancelled. The caller persists the change.
func CancelBooking(b *models.Booking, requesterID uint, now time.Time) error {
	if b.ClientID != requesterID {
		return httperr.ErrBusiness("not_booking_owner")
	}
	if b.DeletedAt != nil || b.Status == string(BookingCancelled) {
		return httperr.ErrBusiness("booking_already_cancelled")
	}
	if b.StartTime.Before(now) {
		return httperr.ErrBusiness("booking_in_the_past")
	}

	b.Status = string(BookingCancelled)
	b.DeletedAt = &now
	return nil
}

// CancelShift applies the owner-cancellation rules and marks the shift
// deleted. confirmedBookings is the count of live confirmed bookings
// hosted by the shift.
func CancelShift(s *models.Shift, requesterID uint, confirmedBookings int64, now time.Time) error {
	if s.ProfessionalID != requesterID {
		return httperr.ErrBusiness("not_shift_owner")
	}
	if confirmedBookings > 0 {
		return httperr.ErrBusiness("shift_has_bookings")
	}

	s.DeletedAt = &now
	return nil
}
