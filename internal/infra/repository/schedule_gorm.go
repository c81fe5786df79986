package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
	"github.com/p0rkchop/ward-sub000/internal/models"
)

// ScheduleGormRepository implements schedule.Repository on Postgres.
// Soft deletion is a plain nullable column: every active-state query
// spells out its own deleted_at IS NULL predicate instead of leaning
// on an ORM hook.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

// --------------------------------------------------
// Point lookups
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetResource(
	ctx context.Context,
	id uint,
) (*models.Resource, error) {

	var res models.Resource
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ScheduleGormRepository) GetShift(
	ctx context.Context,
	id uint,
) (*models.Shift, error) {

	var shift models.Shift
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&shift).Error; err != nil {
		return nil, translate(err)
	}
	return &shift, nil
}

func (r *ScheduleGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&booking).Error; err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

// --------------------------------------------------
// Window queries
// --------------------------------------------------

func (r *ScheduleGormRepository) ListShiftsIntersecting(
	ctx context.Context,
	start, end time.Time,
) ([]models.Shift, error) {

	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Joins("JOIN resources ON resources.id = shifts.resource_id").
		Where(
			"shifts.deleted_at IS NULL AND resources.deleted_at IS NULL AND resources.active = ?"+
				" AND shifts.start_time < ? AND shifts.end_time > ?",
			true, end, start,
		).
		Order("shifts.start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *ScheduleGormRepository) ListConfirmedBookingsStarting(
	ctx context.Context,
	start, end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"deleted_at IS NULL AND status = ? AND start_time >= ? AND start_time < ?",
			string(domain.BookingConfirmed), start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *ScheduleGormRepository) ListConflictingShifts(
	ctx context.Context,
	professionalID, resourceID uint,
	start, end time.Time,
) ([]models.Shift, error) {

	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Where(
			"deleted_at IS NULL AND (professional_id = ? OR resource_id = ?)"+
				" AND start_time < ? AND end_time > ?",
			professionalID, resourceID, end, start,
		).
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *ScheduleGormRepository) ListCandidateShifts(
	ctx context.Context,
	start, end time.Time,
) ([]domain.Candidate, error) {

	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "shifts"}}).
		Joins("JOIN resources ON resources.id = shifts.resource_id").
		Where(
			"shifts.deleted_at IS NULL AND resources.deleted_at IS NULL AND resources.active = ?"+
				" AND shifts.start_time <= ? AND shifts.end_time >= ?",
			true, start, end,
		).
		Order("shifts.id ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}

	if len(shifts) == 0 {
		return nil, nil
	}

	shiftIDs := make([]uint, len(shifts))
	for i, s := range shifts {
		shiftIDs[i] = s.ID
	}

	type countRow struct {
		ShiftID uint
		N       int64
	}

	var rows []countRow
	err = r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("shift_id, COUNT(*) AS n").
		Where(
			"shift_id IN ? AND deleted_at IS NULL AND status = ? AND start_time = ? AND end_time = ?",
			shiftIDs, string(domain.BookingConfirmed), start, end,
		).
		Group("shift_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ShiftID] = row.N
	}

	candidates := make([]domain.Candidate, len(shifts))
	for i, s := range shifts {
		candidates[i] = domain.Candidate{
			Shift:        s,
			BookingCount: counts[s.ID],
		}
	}

	return candidates, nil
}

// --------------------------------------------------
// Counts
// --------------------------------------------------

func (r *ScheduleGormRepository) CountConfirmedBookingsForSlot(
	ctx context.Context,
	shiftID uint,
	start, end time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"shift_id = ? AND deleted_at IS NULL AND status = ? AND start_time = ? AND end_time = ?",
			shiftID, string(domain.BookingConfirmed), start, end,
		).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ScheduleGormRepository) CountConfirmedBookingsForShift(
	ctx context.Context,
	shiftID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"shift_id = ? AND deleted_at IS NULL AND status = ?",
			shiftID, string(domain.BookingConfirmed),
		).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *ScheduleGormRepository) ListShiftsByProfessional(
	ctx context.Context,
	professionalID uint,
) ([]models.Shift, error) {

	var shifts []models.Shift
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Where("professional_id = ? AND deleted_at IS NULL", professionalID).
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *ScheduleGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("client_id = ? AND deleted_at IS NULL", clientID).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateShift(
	ctx context.Context,
	s *models.Shift,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	err := r.db.WithContext(ctx).Create(b).Error
	// uq_bookings_shift_slot firing here means a concurrent writer
	// claimed the slot after the recheck; the booking engine retries
	// conflicts.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("slot_already_taken")
	}
	return err
}

func (r *ScheduleGormRepository) UpdateShift(
	ctx context.Context,
	s *models.Shift,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ScheduleGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
