package schedule

import (
	"context"
	"time"

	"github.com/p0rkchop/ward-sub000/internal/audit"
	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
	"github.com/p0rkchop/ward-sub000/internal/timeslot"
)

type CreateShift struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	slotMinutes int
}

func NewCreateShift(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	slotMinutes int,
) *CreateShift {
	if slotMinutes <= 0 {
		slotMinutes = timeslot.DefaultSlotMinutes
	}
	return &CreateShift{
		repo:        repo,
		audit:       auditor,
		slotMinutes: slotMinutes,
	}
}

func (uc *CreateShift) Execute(
	ctx context.Context,
	professionalID uint,
	resourceID uint,
	start, end time.Time,
) (*models.Shift, error) {

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}
	if err := validateShiftInterval(start, end, uc.slotMinutes); err != nil {
		return nil, err
	}

	if _, err := requireRole(ctx, uc.repo, professionalID, domain.RoleProfessional); err != nil {
		return nil, err
	}
	if _, err := requireActiveResource(ctx, uc.repo, resourceID); err != nil {
		return nil, err
	}

	// Optimistic check outside the transaction; cheap but may be stale.
	conflicts, err := findShiftConflicts(ctx, uc.repo, professionalID, resourceID, start, end)
	if err != nil {
		return nil, err
	}
	if err := conflicts.toError(); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		ProfessionalID: professionalID,
		ResourceID:     resourceID,
		StartTime:      start,
		EndTime:        end,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// Mandatory recheck inside the transaction closes the window
		// between the optimistic check and the insert.
		conflicts, err := findShiftConflicts(ctx, tx, professionalID, resourceID, start, end)
		if err != nil {
			return err
		}
		if err := conflicts.toError(); err != nil {
			return err
		}

		return tx.CreateShift(ctx, shift)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &professionalID,
		Action:   "shift_created",
		Entity:   "shift",
		EntityID: &shift.ID,
	})

	return shift, nil
}

func (c shiftConflicts) toError() error {
	if c.Professional {
		return httperr.ErrConflict("professional_shift_overlap")
	}
	if c.Resource {
		return httperr.ErrConflict("resource_shift_overlap")
	}
	return nil
}
