package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/p0rkchop/ward-sub000/internal/models"
)

// ErrRecordNotFound is returned by point lookups when the record is
// absent (or soft-deleted, for lookups that filter tombstones).
var ErrRecordNotFound = errors.New("record not found")

// Candidate is a shift eligible for auto-matching together with the
// number of confirmed bookings already matched to the requested slot.
type Candidate struct {
	Shift        models.Shift
	BookingCount int64
}

type Repository interface {
	// -------- Point lookups --------

	// GetUser returns the non-deleted user.
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// GetResource returns the resource including soft-deleted rows;
	// the active/tombstone checks belong to the caller.
	GetResource(ctx context.Context, id uint) (*models.Resource, error)

	// GetShift returns the non-deleted shift.
	GetShift(ctx context.Context, id uint) (*models.Shift, error)

	// GetBooking returns the booking including soft-deleted rows so
	// cancellation can distinguish "already cancelled" from "absent".
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	// -------- Window queries --------

	// ListShiftsIntersecting returns non-deleted shifts of active,
	// non-deleted resources whose interval intersects [start, end).
	ListShiftsIntersecting(ctx context.Context, start, end time.Time) ([]models.Shift, error)

	// ListConfirmedBookingsStarting returns non-deleted CONFIRMED
	// bookings whose start time falls in [start, end).
	ListConfirmedBookingsStarting(ctx context.Context, start, end time.Time) ([]models.Booking, error)

	// ListConflictingShifts returns non-deleted shifts overlapping
	// [start, end) that belong to the professional or the resource.
	ListConflictingShifts(ctx context.Context, professionalID, resourceID uint, start, end time.Time) ([]models.Shift, error)

	// ListCandidateShifts returns non-deleted shifts of active,
	// non-deleted resources fully covering [start, end), each with its
	// count of confirmed bookings exactly matching the slot.
	ListCandidateShifts(ctx context.Context, start, end time.Time) ([]Candidate, error)

	// -------- Counts --------

	CountConfirmedBookingsForSlot(ctx context.Context, shiftID uint, start, end time.Time) (int64, error)
	CountConfirmedBookingsForShift(ctx context.Context, shiftID uint) (int64, error)

	// -------- Listings --------

	ListShiftsByProfessional(ctx context.Context, professionalID uint) ([]models.Shift, error)
	ListBookingsByClient(ctx context.Context, clientID uint) ([]models.Booking, error)

	// -------- Writes --------

	CreateShift(ctx context.Context, s *models.Shift) error
	CreateBooking(ctx context.Context, b *models.Booking) error
	UpdateShift(ctx context.Context, s *models.Shift) error
	UpdateBooking(ctx context.Context, b *models.Booking) error

	// Transaction runs fn against a repository scoped to one atomic
	// transaction with read-your-writes consistency. fn returning an
	// error rolls the transaction back.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
