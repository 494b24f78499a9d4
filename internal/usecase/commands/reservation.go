package commands

import (
	"context"

	"ticketboss/internal/infra"
	"ticketboss/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	EventID   string
	PartnerID string
	Seats     int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*ReservationSnapshot, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (*ReservationSnapshot, error)
}

type reservationCommandsImpl struct {
	inventory InventoryWriter
}

func NewReservationCommands(inventory InventoryWriter) ReservationCommands {
	return &reservationCommandsImpl{inventory: inventory}
}

// CreateReservation delegates the whole read-decide-write sequence to the
// engine; capacity rejection is a first-class outcome, not a fault. No retry
// happens here: a failed call is final and the caller decides what to do.
func (u *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*ReservationSnapshot, error) {
	snap, err := u.inventory.CreateReservation(ctx, params.EventID, params.PartnerID, params.Seats)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		case infra.IsKind(err, infra.KindInsufficientCapacity):
			return nil, errs.Mark(err, errs.ErrInsufficientAvailability)
		case infra.IsKind(err, infra.KindInvalidArgument):
			return nil, errs.Mark(err, errs.ErrInvalidSeatCount)
		default:
			return nil, errs.Wrap(err, "failed to create reservation")
		}
	}
	return snap, nil
}

func (u *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID) (*ReservationSnapshot, error) {
	snap, err := u.inventory.CancelReservation(ctx, reservationID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		case infra.IsKind(err, infra.KindTerminalState):
			return nil, errs.Mark(err, errs.ErrReservationAlreadyCancelled)
		default:
			return nil, errs.Wrap(err, "failed to cancel reservation")
		}
	}
	return snap, nil
}
