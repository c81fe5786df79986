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

type CancelShift struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// Now is the cancellation clock; replaced in tests.
	Now func() time.Time
}

func NewCancelShift(repo domain.Repository, auditor *audit.Dispatcher) *CancelShift {
	return &CancelShift{
		repo:  repo,
		audit: auditor,
		Now:   time.Now,
	}
}

func (uc *CancelShift) Execute(
	ctx context.Context,
	shiftID uint,
	requesterID uint,
) (*models.Shift, error) {

	var shift *models.Shift

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		s, err := tx.GetShift(ctx, shiftID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return httperr.ErrNotFound("shift", shiftID)
			}
			return err
		}

		confirmed, err := tx.CountConfirmedBookingsForShift(ctx, s.ID)
		if err != nil {
			return err
		}

		if err := domain.CancelShift(s, requesterID, confirmed, uc.Now().UTC()); err != nil {
			return err
		}

		shift = s
		return tx.UpdateShift(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "shift_cancelled",
		Entity:   "shift",
		EntityID: &shift.ID,
	})

	return shift, nil
}
