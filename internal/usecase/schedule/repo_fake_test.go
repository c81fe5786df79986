package schedule

import (
	"context"
	"time"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/models"
	"github.com/p0rkchop/ward-sub000/internal/timeslot"
)

// fakeRepo is an in-memory schedule.Repository. Transaction runs the
// callback against the same state; beforeRecheck lets tests inject a
// concurrent writer between candidate search and the capacity recheck.
type fakeRepo struct {
	users     map[uint]*models.User
	resources map[uint]*models.Resource
	shifts    []*models.Shift
	bookings  []*models.Booking

	nextShiftID   uint
	nextBookingID uint
	txCalls       int

	beforeRecheck func(r *fakeRepo, shiftID uint)
	// createBookingErr fails the next insert once, simulating a
	// constraint violation at commit time.
	createBookingErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:     map[uint]*models.User{},
		resources: map[uint]*models.Resource{},
	}
}

// --------- Fixtures ---------

func (r *fakeRepo) addUser(id uint, role domain.Role) *models.User {
	u := &models.User{ID: id, Name: "user", Email: "u@example.com", Role: string(role)}
	r.users[id] = u
	return u
}

func (r *fakeRepo) addResource(id uint, active bool) *models.Resource {
	res := &models.Resource{ID: id, Name: "resource", Active: active, Quantity: 1, ProfessionalsPerUnit: 1}
	r.resources[id] = res
	return res
}

func (r *fakeRepo) addShift(professionalID, resourceID uint, start, end time.Time) *models.Shift {
	r.nextShiftID++
	s := &models.Shift{
		ID:             r.nextShiftID,
		ProfessionalID: professionalID,
		ResourceID:     resourceID,
		StartTime:      start,
		EndTime:        end,
	}
	r.shifts = append(r.shifts, s)
	return s
}

func (r *fakeRepo) addBooking(clientID, shiftID uint, start, end time.Time, status domain.BookingStatus) *models.Booking {
	r.nextBookingID++
	b := &models.Booking{
		ID:        r.nextBookingID,
		ClientID:  clientID,
		ShiftID:   shiftID,
		StartTime: start,
		EndTime:   end,
		Status:    string(status),
	}
	r.bookings = append(r.bookings, b)
	return b
}

func (r *fakeRepo) resourceBookable(id uint) bool {
	res, ok := r.resources[id]
	return ok && res.Active && res.DeletedAt == nil
}

// --------- Point lookups ---------

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetResource(_ context.Context, id uint) (*models.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return res, nil
}

func (r *fakeRepo) GetShift(_ context.Context, id uint) (*models.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id && s.DeletedAt == nil {
			return s, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

// --------- Window queries ---------

func (r *fakeRepo) ListShiftsIntersecting(_ context.Context, start, end time.Time) ([]models.Shift, error) {
	window := timeslot.Interval{Start: start, End: end}
	var out []models.Shift
	for _, s := range r.shifts {
		if s.DeletedAt != nil || !r.resourceBookable(s.ResourceID) {
			continue
		}
		if (timeslot.Interval{Start: s.StartTime, End: s.EndTime}).Overlaps(window) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListConfirmedBookingsStarting(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.DeletedAt != nil || b.Status != string(domain.BookingConfirmed) {
			continue
		}
		if !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListConflictingShifts(_ context.Context, professionalID, resourceID uint, start, end time.Time) ([]models.Shift, error) {
	window := timeslot.Interval{Start: start, End: end}
	var out []models.Shift
	for _, s := range r.shifts {
		if s.DeletedAt != nil {
			continue
		}
		if s.ProfessionalID != professionalID && s.ResourceID != resourceID {
			continue
		}
		if (timeslot.Interval{Start: s.StartTime, End: s.EndTime}).Overlaps(window) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListCandidateShifts(_ context.Context, start, end time.Time) ([]domain.Candidate, error) {
	slot := timeslot.Interval{Start: start, End: end}
	var out []domain.Candidate
	for _, s := range r.shifts {
		if s.DeletedAt != nil || !r.resourceBookable(s.ResourceID) {
			continue
		}
		if !(timeslot.Interval{Start: s.StartTime, End: s.EndTime}).Covers(slot) {
			continue
		}
		out = append(out, domain.Candidate{Shift: *s, BookingCount: r.countSlot(s.ID, start, end)})
	}
	return out, nil
}

// --------- Counts ---------

func (r *fakeRepo) countSlot(shiftID uint, start, end time.Time) int64 {
	var count int64
	for _, b := range r.bookings {
		if b.ShiftID != shiftID || b.DeletedAt != nil || b.Status != string(domain.BookingConfirmed) {
			continue
		}
		if b.StartTime.Equal(start) && b.EndTime.Equal(end) {
			count++
		}
	}
	return count
}

// CountConfirmedBookingsForSlot is the in-transaction recheck: the
// beforeRecheck hook fires here (once, unless it re-arms itself) to
// simulate a concurrent writer sneaking in after the candidate fetch.
func (r *fakeRepo) CountConfirmedBookingsForSlot(_ context.Context, shiftID uint, start, end time.Time) (int64, error) {
	if r.beforeRecheck != nil {
		hook := r.beforeRecheck
		r.beforeRecheck = nil
		hook(r, shiftID)
	}
	return r.countSlot(shiftID, start, end), nil
}

func (r *fakeRepo) CountConfirmedBookingsForShift(_ context.Context, shiftID uint) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.ShiftID == shiftID && b.DeletedAt == nil && b.Status == string(domain.BookingConfirmed) {
			count++
		}
	}
	return count, nil
}

// --------- Listings ---------

func (r *fakeRepo) ListShiftsByProfessional(_ context.Context, professionalID uint) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.shifts {
		if s.ProfessionalID == professionalID && s.DeletedAt == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsByClient(_ context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID && b.DeletedAt == nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

// --------- Writes ---------

func (r *fakeRepo) CreateShift(_ context.Context, s *models.Shift) error {
	r.nextShiftID++
	s.ID = r.nextShiftID
	r.shifts = append(r.shifts, s)
	return nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createBookingErr != nil {
		err := r.createBookingErr
		r.createBookingErr = nil
		return err
	}
	r.nextBookingID++
	b.ID = r.nextBookingID
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) UpdateShift(_ context.Context, _ *models.Shift) error {
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, _ *models.Booking) error {
	return nil
}

// --------- Transaction ---------

func (r *fakeRepo) Transaction(_ context.Context, fn func(domain.Repository) error) error {
	r.txCalls++
	return fn(r)
}

var _ domain.Repository = (*fakeRepo)(nil)
