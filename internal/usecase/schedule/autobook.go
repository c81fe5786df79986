package schedule

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/p0rkchop/ward-sub000/internal/audit"
	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
	"github.com/p0rkchop/ward-sub000/internal/timeslot"
)

// One confirmed booking per shift per slot. The resource capacity
// attributes on the admin side do not feed into matching.
const slotCapacity = 1

// maxAttempts bounds the retry loop: one retry after a detected race.
const maxAttempts = 2

// ======================================================
// USE CASE
// ======================================================

// AutoBook assigns a client to a randomly chosen eligible shift for a
// single slot. The capacity recheck and the insert run in the same
// transaction, so a stale candidate read can never produce an
// over-booked slot; detected races are retried once after a short
// jittered backoff.
type AutoBook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger

	slotMinutes int

	// Pick selects a candidate index in [0, n). Seedable for tests.
	Pick func(n int) int
	// Sleep applies the inter-attempt backoff. Replaced in tests.
	Sleep func(d time.Duration)
}

func NewAutoBook(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log zerolog.Logger,
	slotMinutes int,
) *AutoBook {
	if slotMinutes <= 0 {
		slotMinutes = timeslot.DefaultSlotMinutes
	}
	return &AutoBook{
		repo:        repo,
		audit:       auditor,
		log:         log,
		slotMinutes: slotMinutes,
		Pick:        rand.Intn,
		Sleep:       time.Sleep,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AutoBook) Execute(
	ctx context.Context,
	clientID uint,
	start, end time.Time,
) (*models.Booking, error) {

	if err := validateWindow(start, end); err != nil {
		return nil, err
	}
	if err := validateExactSlot(start, end, uc.slotMinutes); err != nil {
		return nil, err
	}

	if _, err := requireRole(ctx, uc.repo, clientID, domain.RoleClient); err != nil {
		return nil, err
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		booking, err := uc.attempt(ctx, clientID, start, end)
		if err == nil {
			uc.audit.Dispatch(audit.Event{
				UserID:   &clientID,
				Action:   "booking_created",
				Entity:   "booking",
				EntityID: &booking.ID,
			})
			return booking, nil
		}

		// Rule violations and bad references are not races; retrying
		// cannot fix them.
		if httperr.IsValidation(err) || httperr.IsNotFound(err) || httperr.IsAnyBusiness(err) {
			return nil, err
		}

		lastErr = err

		if httperr.IsConflict(err) && attempt < maxAttempts {
			backoff := time.Duration(10+uc.Pick(90)) * time.Millisecond
			uc.log.Warn().
				Uint("client_id", clientID).
				Time("slot_start", start).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("booking slot contended, retrying")
			uc.Sleep(backoff)
			continue
		}

		break
	}

	uc.log.Error().
		Err(lastErr).
		Uint("client_id", clientID).
		Time("slot_start", start).
		Msg("auto booking failed")

	return nil, errors.New("failed to create booking")
}

// attempt runs one full pass of the matching protocol inside a single
// transaction: candidate search, filter, random pick, capacity
// recheck, insert.
func (uc *AutoBook) attempt(
	ctx context.Context,
	clientID uint,
	start, end time.Time,
) (*models.Booking, error) {

	var booking *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		candidates, err := tx.ListCandidateShifts(ctx, start, end)
		if err != nil {
			return err
		}

		eligible := make([]domain.Candidate, 0, len(candidates))
		for _, c := range candidates {
			if c.BookingCount < slotCapacity {
				eligible = append(eligible, c)
			}
		}

		if len(eligible) == 0 {
			return httperr.ErrBusiness("no_available_professionals")
		}

		chosen := eligible[uc.Pick(len(eligible))]

		// Recount inside the transaction. A concurrent writer that
		// already claimed the slot shows up here.
		taken, err := tx.CountConfirmedBookingsForSlot(ctx, chosen.Shift.ID, start, end)
		if err != nil {
			return err
		}
		if taken >= slotCapacity {
			return httperr.ErrConflict("slot_already_taken")
		}

		booking = &models.Booking{
			Reference: uuid.NewString(),
			ClientID:  clientID,
			ShiftID:   chosen.Shift.ID,
			StartTime: start,
			EndTime:   end,
			Status:    string(domain.BookingConfirmed),
		}

		return tx.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}
