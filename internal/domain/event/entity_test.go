//go:build unit

package event_test

import (
	"testing"

	"ticketboss/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := event.NewEvent("node-meetup-2025", "Node.js Meet-up", 500)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "node-meetup-2025", actual.ID())
		assert.Equal(t, "Node.js Meet-up", actual.Name())
		assert.Equal(t, 500, actual.TotalSeats())
		assert.Equal(t, 500, actual.AvailableSeats())
		assert.Equal(t, int64(0), actual.Version())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name       string
			id         string
			totalSeats int
			errIs      error
		}{
			{name: "empty event id", id: "", totalSeats: 10, errIs: event.ErrEmptyEventID},
			{name: "zero capacity", id: "ev", totalSeats: 0, errIs: event.ErrInvalidCapacity},
			{name: "negative capacity", id: "ev", totalSeats: -5, errIs: event.ErrInvalidCapacity},
			{name: "minimum capacity", id: "ev", totalSeats: 1},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := event.NewEvent(tc.id, "name", tc.totalSeats)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestEvent_Allocate(t *testing.T) {
	newEvent := func(t *testing.T) *event.Event {
		t.Helper()
		ev, err := event.NewEvent("ev", "name", 100)
		require.NoError(t, err)
		return ev
	}

	t.Run("decrements availability and bumps version by exactly one", func(t *testing.T) {
		ev := newEvent(t)
		require.NoError(t, ev.Allocate(3))
		assert.Equal(t, 97, ev.AvailableSeats())
		assert.Equal(t, int64(1), ev.Version())
		assert.Equal(t, 100, ev.TotalSeats())
	})

	t.Run("allocating the full pool succeeds", func(t *testing.T) {
		ev := newEvent(t)
		require.NoError(t, ev.Allocate(100))
		assert.Equal(t, 0, ev.AvailableSeats())
	})

	t.Run("insufficient seats leaves event untouched", func(t *testing.T) {
		ev := newEvent(t)
		require.ErrorIs(t, ev.Allocate(101), event.ErrInsufficientSeats)
		assert.Equal(t, 100, ev.AvailableSeats())
		assert.Equal(t, int64(0), ev.Version())
	})

	t.Run("non-positive seat counts are rejected", func(t *testing.T) {
		ev := newEvent(t)
		require.ErrorIs(t, ev.Allocate(0), event.ErrInvalidSeatCount)
		require.ErrorIs(t, ev.Allocate(-1), event.ErrInvalidSeatCount)
		assert.Equal(t, int64(0), ev.Version())
	})
}

func TestEvent_Release(t *testing.T) {
	t.Run("round trip restores availability", func(t *testing.T) {
		ev, err := event.NewEvent("ev", "name", 100)
		require.NoError(t, err)

		require.NoError(t, ev.Allocate(5))
		require.NoError(t, ev.Release(5))
		assert.Equal(t, 100, ev.AvailableSeats())
		assert.Equal(t, int64(2), ev.Version())
	})

	t.Run("release beyond capacity is rejected", func(t *testing.T) {
		ev, err := event.NewEvent("ev", "name", 100)
		require.NoError(t, err)

		require.ErrorIs(t, ev.Release(1), event.ErrCapacityOverflow)
		assert.Equal(t, int64(0), ev.Version())
	})
}
