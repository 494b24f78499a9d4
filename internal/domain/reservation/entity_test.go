//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"ticketboss/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		id := uuid.New()
		actual, err := reservation.NewReservation(id, "node-meetup-2025", "p1", 3, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, id, actual.ID())
		assert.Equal(t, "node-meetup-2025", actual.EventID())
		assert.Equal(t, "p1", actual.PartnerID())
		assert.Equal(t, 3, actual.Seats())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Nil(t, actual.CancelledAt())
		assert.False(t, actual.IsCancelled())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name      string
			partnerID string
			seats     int
			errIs     error
		}{
			{name: "empty partner id", partnerID: "", seats: 1, errIs: reservation.ErrEmptyPartnerID},
			{name: "zero seats", partnerID: "p1", seats: 0, errIs: reservation.ErrInvalidSeatCount},
			{name: "negative seats", partnerID: "p1", seats: -3, errIs: reservation.ErrInvalidSeatCount},
			{name: "single seat", partnerID: "p1", seats: 1},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewReservation(uuid.New(), "ev", tc.partnerID, tc.seats, now)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestReservation_Cancel(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cancelled := created.Add(30 * time.Minute)

	t.Run("confirmed to cancelled is the only transition", func(t *testing.T) {
		rec, err := reservation.NewReservation(uuid.New(), "ev", "p1", 2, created)
		require.NoError(t, err)

		require.NoError(t, rec.Cancel(cancelled))
		assert.Equal(t, reservation.StatusCancelled, rec.Status())
		assert.True(t, rec.IsCancelled())
		require.NotNil(t, rec.CancelledAt())
		assert.Equal(t, cancelled, *rec.CancelledAt())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		rec, err := reservation.NewReservation(uuid.New(), "ev", "p1", 2, created)
		require.NoError(t, err)
		require.NoError(t, rec.Cancel(cancelled))

		err = rec.Cancel(cancelled.Add(time.Minute))
		require.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		// 最初の取消時刻が維持される
		assert.Equal(t, cancelled, *rec.CancelledAt())
	})
}
