package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/p0rkchop/ward-sub000/internal/audit"
	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// Now is the cancellation clock; replaced in tests.
	Now func() time.Time
}

func NewCancelBooking(repo domain.Repository, auditor *audit.Dispatcher) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditor,
		Now:   time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	requesterID uint,
) (*models.Booking, error) {

	var booking *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// The lookup keeps tombstoned rows so "already cancelled" can
		// be told apart from "never existed".
		b, err := tx.GetBooking(ctx, bookingID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return httperr.ErrNotFound("booking", bookingID)
			}
			return err
		}

		if err := domain.CancelBooking(b, requesterID, uc.Now().UTC()); err != nil {
			return err
		}

		booking = b
		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &booking.ID,
	})

	return booking, nil
}
