//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ticketboss/internal/infra/inventory"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/pkg/errs"
	"ticketboss/internal/pkg/idgen"
	"ticketboss/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommands(t *testing.T) commands.ReservationCommands {
	t.Helper()
	engine := inventory.NewEngine(
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		idgen.NewSequentialGenerator(),
	)
	require.NoError(t, engine.InitializeEvent(context.Background(), "node-meetup-2025", "Node.js Meet-up", 10))
	return commands.NewReservationCommands(engine)
}

func TestReservationCommands_CreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns the write-side snapshot", func(t *testing.T) {
		cmds := newCommands(t)

		snap, err := cmds.CreateReservation(ctx, commands.CreateReservationParams{
			EventID:   "node-meetup-2025",
			PartnerID: "p1",
			Seats:     3,
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", snap.Status)
		assert.Equal(t, 3, snap.Seats)
	})

	t.Run("store failures map to usecase sentinels", func(t *testing.T) {
		testCases := []struct {
			name   string
			params commands.CreateReservationParams
			errIs  error
		}{
			{
				name:   "unknown event",
				params: commands.CreateReservationParams{EventID: "nope", PartnerID: "p1", Seats: 1},
				errIs:  errs.ErrEventNotFound,
			},
			{
				name:   "capacity exceeded",
				params: commands.CreateReservationParams{EventID: "node-meetup-2025", PartnerID: "p1", Seats: 11},
				errIs:  errs.ErrInsufficientAvailability,
			},
			{
				name:   "non-positive seats",
				params: commands.CreateReservationParams{EventID: "node-meetup-2025", PartnerID: "p1", Seats: 0},
				errIs:  errs.ErrInvalidSeatCount,
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cmds := newCommands(t)
				_, err := cmds.CreateReservation(ctx, tc.params)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestReservationCommands_CancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success flips the record to cancelled", func(t *testing.T) {
		cmds := newCommands(t)
		snap, err := cmds.CreateReservation(ctx, commands.CreateReservationParams{
			EventID:   "node-meetup-2025",
			PartnerID: "p1",
			Seats:     2,
		})
		require.NoError(t, err)

		cancelled, err := cmds.CancelReservation(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
	})

	t.Run("unknown reservation maps to not-found sentinel", func(t *testing.T) {
		cmds := newCommands(t)
		_, err := cmds.CancelReservation(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("double cancel maps to already-cancelled sentinel", func(t *testing.T) {
		cmds := newCommands(t)
		snap, err := cmds.CreateReservation(ctx, commands.CreateReservationParams{
			EventID:   "node-meetup-2025",
			PartnerID: "p1",
			Seats:     2,
		})
		require.NoError(t, err)

		_, err = cmds.CancelReservation(ctx, snap.ID)
		require.NoError(t, err)
		_, err = cmds.CancelReservation(ctx, snap.ID)
		require.ErrorIs(t, err, errs.ErrReservationAlreadyCancelled)
	})
}
