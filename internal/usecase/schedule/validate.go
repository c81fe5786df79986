package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
	"github.com/p0rkchop/ward-sub000/internal/timeslot"
)

// ======================================================
// PRECONDITIONS
// ======================================================

// requireRole fetches the user and checks its role: NotFound when the
// user is absent or soft-deleted, BusinessRule on role mismatch.
func requireRole(
	ctx context.Context,
	repo domain.Repository,
	id uint,
	role domain.Role,
) (*models.User, error) {

	user, err := repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user", id)
		}
		return nil, err
	}

	if user.Role != string(role) {
		return nil, httperr.ErrBusiness(fmt.Sprintf("user_not_%s", roleCode(role)))
	}

	return user, nil
}

func roleCode(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "admin"
	case domain.RoleProfessional:
		return "professional"
	default:
		return "client"
	}
}

// requireActiveResource: NotFound when absent, BusinessRule when
// inactive or soft-deleted.
func requireActiveResource(
	ctx context.Context,
	repo domain.Repository,
	id uint,
) (*models.Resource, error) {

	res, err := repo.GetResource(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("resource", id)
		}
		return nil, err
	}

	if !res.Active || res.DeletedAt != nil {
		return nil, httperr.ErrBusiness("resource_inactive")
	}

	return res, nil
}

// validateWindow rejects empty or inverted windows.
func validateWindow(start, end time.Time) error {
	fields := map[string]string{}
	if start.IsZero() {
		fields["start"] = "start time is required"
	}
	if end.IsZero() {
		fields["end"] = "end time is required"
	}
	if len(fields) == 0 && !start.Before(end) {
		fields["end"] = "end time must be after start time"
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields)
	}
	return nil
}

// validateShiftInterval checks grid alignment and the multiple-of-slot
// duration rule used by shift creation.
func validateShiftInterval(start, end time.Time, slotMinutes int) error {
	fields := map[string]string{}
	if !timeslot.IsAligned(start, slotMinutes) {
		fields["start"] = fmt.Sprintf("start time must be aligned to the %d-minute grid", slotMinutes)
	}
	if !timeslot.IsMultipleOf(start, end, slotMinutes) {
		fields["end"] = fmt.Sprintf("duration must be a positive multiple of %d minutes", slotMinutes)
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields)
	}
	return nil
}

// validateExactSlot checks the booking interval: grid-aligned and
// exactly one slot long.
func validateExactSlot(start, end time.Time, slotMinutes int) error {
	fields := map[string]string{}
	if !timeslot.IsAligned(start, slotMinutes) {
		fields["start"] = fmt.Sprintf("start time must be aligned to the %d-minute grid", slotMinutes)
	}
	if end.Sub(start) != time.Duration(slotMinutes)*time.Minute {
		fields["end"] = fmt.Sprintf("booking must span exactly %d minutes", slotMinutes)
	}

	if len(fields) > 0 {
		return httperr.ErrValidation(fields)
	}
	return nil
}

// ======================================================
// OVERLAP DETECTION
// ======================================================

type shiftConflicts struct {
	Professional bool
	Resource     bool
}

// findShiftConflicts partitions the overlapping non-deleted shifts
// into conflicts with the professional's own shifts and conflicts with
// the resource's shifts, so the caller can report the specific side.
func findShiftConflicts(
	ctx context.Context,
	repo domain.Repository,
	professionalID uint,
	resourceID uint,
	start, end time.Time,
) (shiftConflicts, error) {

	shifts, err := repo.ListConflictingShifts(ctx, professionalID, resourceID, start, end)
	if err != nil {
		return shiftConflicts{}, err
	}

	window := timeslot.Interval{Start: start, End: end}

	var out shiftConflicts
	for _, s := range shifts {
		iv := timeslot.Interval{Start: s.StartTime, End: s.EndTime}
		if !iv.Overlaps(window) {
			continue
		}
		if s.ProfessionalID == professionalID {
			out.Professional = true
		}
		if s.ResourceID == resourceID {
			out.Resource = true
		}
	}

	return out, nil
}
