package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendhub/service-lending/internal/domain/apperr"
)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	bk, err := NewBooking(uuid.New(), uuid.New(), start, start.Add(48*time.Hour))
	require.NoError(t, err)
	return bk
}

func TestNewBooking(t *testing.T) {
	bk := newTestBooking(t)

	assert.NotEqual(t, uuid.Nil, bk.ID())
	assert.Equal(t, StatusWaiting, bk.Status())
	assert.Equal(t, int64(1), bk.Version())
}

func TestNewBooking_Validation(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	_, err := NewBooking(uuid.Nil, uuid.New(), start, end)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = NewBooking(uuid.New(), uuid.Nil, start, end)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = NewBooking(uuid.New(), uuid.New(), time.Time{}, end)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestBooking_Decide(t *testing.T) {
	t.Run("approve waiting", func(t *testing.T) {
		bk := newTestBooking(t)
		require.NoError(t, bk.Decide(true))
		assert.Equal(t, StatusApproved, bk.Status())
	})

	t.Run("reject waiting", func(t *testing.T) {
		bk := newTestBooking(t)
		require.NoError(t, bk.Decide(false))
		assert.Equal(t, StatusRejected, bk.Status())
	})

	t.Run("approved is final", func(t *testing.T) {
		bk := newTestBooking(t)
		require.NoError(t, bk.Decide(true))

		err := bk.Decide(false)
		assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
		err = bk.Decide(true)
		assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
		assert.Equal(t, StatusApproved, bk.Status())
	})

	t.Run("rejected can still be approved", func(t *testing.T) {
		bk := newTestBooking(t)
		require.NoError(t, bk.Decide(false))
		require.NoError(t, bk.Decide(true))
		assert.Equal(t, StatusApproved, bk.Status())
	})

	t.Run("rejected cannot be re-rejected", func(t *testing.T) {
		bk := newTestBooking(t)
		require.NoError(t, bk.Decide(false))

		err := bk.Decide(false)
		assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
	})
}

func TestBooking_IsVisibleTo(t *testing.T) {
	bk := newTestBooking(t)
	ownerID := uuid.New()

	assert.True(t, bk.IsVisibleTo(bk.BookerID(), ownerID))
	assert.True(t, bk.IsVisibleTo(ownerID, ownerID))
	assert.False(t, bk.IsVisibleTo(uuid.New(), ownerID))
}

func TestBooking_IncrementVersion(t *testing.T) {
	bk := newTestBooking(t)
	bk.IncrementVersion()
	assert.Equal(t, int64(2), bk.Version())
}
