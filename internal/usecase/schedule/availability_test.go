package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
	"github.com/p0rkchop/ward-sub000/internal/httperr"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func TestComputeAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty window", func(t *testing.T) {
		uc := NewComputeAvailability(newFakeRepo(), 30)

		_, err := uc.Execute(ctx, at(10, 0), at(10, 0))
		assert.True(t, httperr.IsValidation(err))

		_, err = uc.Execute(ctx, at(11, 0), at(10, 0))
		assert.True(t, httperr.IsValidation(err))
	})

	t.Run("single covering shift without bookings", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		repo.addUser(1, domain.RoleProfessional)
		repo.addShift(1, 1, at(10, 0), at(10, 30))

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(10, 30))
		require.NoError(t, err)

		require.Len(t, av.Slots, 1)
		slot := av.Slots[0]
		assert.Equal(t, 1, slot.ShiftCount)
		assert.Equal(t, 0, slot.BookingCount)
		assert.Equal(t, 1, slot.AvailableCapacity)
		assert.True(t, slot.IsAvailable)
		assert.Len(t, av.AvailableSlots, 1)
	})

	t.Run("matching confirmed booking consumes the capacity", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		shift := repo.addShift(1, 1, at(10, 0), at(10, 30))
		repo.addBooking(5, shift.ID, at(10, 0), at(10, 30), domain.BookingConfirmed)

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(10, 30))
		require.NoError(t, err)

		require.Len(t, av.Slots, 1)
		assert.Equal(t, 0, av.Slots[0].AvailableCapacity)
		assert.False(t, av.Slots[0].IsAvailable)
		assert.Empty(t, av.AvailableSlots)
	})

	t.Run("cancelled bookings do not count", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		shift := repo.addShift(1, 1, at(10, 0), at(10, 30))
		repo.addBooking(5, shift.ID, at(10, 0), at(10, 30), domain.BookingCancelled)

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(10, 30))
		require.NoError(t, err)

		assert.Equal(t, 1, av.Slots[0].AvailableCapacity)
	})

	t.Run("slot without covering shift is never available", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		// Covers only the first slot of the window.
		repo.addShift(1, 1, at(10, 0), at(10, 30))

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(11, 0))
		require.NoError(t, err)

		require.Len(t, av.Slots, 2)
		assert.Equal(t, 0, av.Slots[1].ShiftCount)
		assert.False(t, av.Slots[1].IsAvailable)
		require.Len(t, av.AvailableSlots, 1)
		assert.True(t, av.AvailableSlots[0].Start.Equal(at(10, 0)))
	})

	t.Run("partially overlapping shift does not cover the slot", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		// Intersects [10:00,10:30) but does not fully contain it.
		repo.addShift(1, 1, at(10, 15), at(11, 0))

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(10, 30))
		require.NoError(t, err)

		require.Len(t, av.Slots, 1)
		assert.Equal(t, 0, av.Slots[0].ShiftCount)
	})

	t.Run("shifts of inactive resources are excluded", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, false)
		repo.addShift(1, 1, at(10, 0), at(11, 0))

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(11, 0))
		require.NoError(t, err)

		assert.Empty(t, av.AvailableSlots)
	})

	t.Run("orphaned booking yields negative raw capacity", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		repo.addBooking(5, 99, at(10, 0), at(10, 30), domain.BookingConfirmed)

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(10, 30))
		require.NoError(t, err)

		require.Len(t, av.Slots, 1)
		assert.Equal(t, -1, av.Slots[0].AvailableCapacity)
		assert.False(t, av.Slots[0].IsAvailable)
	})

	t.Run("two staggered shifts over a one hour window", func(t *testing.T) {
		repo := newFakeRepo()
		repo.addResource(1, true)
		shiftA := repo.addShift(1, 1, at(9, 30), at(11, 0))
		repo.addShift(2, 1, at(9, 45), at(11, 15))

		uc := NewComputeAvailability(repo, 30)
		av, err := uc.Execute(ctx, at(10, 0), at(11, 0))
		require.NoError(t, err)

		require.Len(t, av.Slots, 2)
		assert.True(t, av.Slots[0].Start.Equal(at(10, 0)))
		assert.True(t, av.Slots[1].Start.Equal(at(10, 30)))
		assert.Equal(t, 2, av.Slots[0].ShiftCount)
		assert.Equal(t, 2, av.Slots[1].ShiftCount)

		// One booking on the first slot leaves the second shift free.
		repo.addBooking(5, shiftA.ID, at(10, 0), at(10, 30), domain.BookingConfirmed)

		av, err = uc.Execute(ctx, at(10, 0), at(11, 0))
		require.NoError(t, err)

		assert.Equal(t, 1, av.Slots[0].AvailableCapacity)
		assert.True(t, av.Slots[0].IsAvailable)
		assert.Equal(t, 2, av.Slots[1].AvailableCapacity)
		assert.Len(t, av.AvailableSlots, 2)
	})
}
