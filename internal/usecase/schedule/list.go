package schedule

import (
	"context"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/models"
)

type ListShifts struct {
	repo domain.Repository
}

func NewListShifts(repo domain.Repository) *ListShifts {
	return &ListShifts{repo: repo}
}

func (uc *ListShifts) Execute(ctx context.Context, professionalID uint) ([]models.Shift, error) {
	return uc.repo.ListShiftsByProfessional(ctx, professionalID)
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context, clientID uint) ([]models.Booking, error) {
	return uc.repo.ListBookingsByClient(ctx, clientID)
}
