package dto

import (
	"time"

	"github.com/p0rkchop/ward-sub000/internal/models"
)

type BookingDTO struct {
	ID        uint      `json:"id"`
	Reference string    `json:"reference"`
	ShiftID   uint      `json:"shift_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		Reference: b.Reference,
		ShiftID:   b.ShiftID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
	}
}

type ShiftDTO struct {
	ID         uint      `json:"id"`
	ResourceID uint      `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

func FromShift(s *models.Shift) ShiftDTO {
	return ShiftDTO{
		ID:         s.ID,
		ResourceID: s.ResourceID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}
