// Package inventory holds the seat-inventory engine: the sole writer over
// event capacity and the reservation ledger. All state is in-memory and lives
// for the process lifetime only.
package inventory

import (
	"context"
	"errors"
	"sync"

	"ticketboss/internal/domain/event"
	"ticketboss/internal/domain/reservation"
	"ticketboss/internal/infra"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/pkg/idgen"
	"ticketboss/internal/usecase/commands"

	"github.com/google/uuid"
)

// Engine serializes mutations per event: each event lives in its own guarded
// cell, so the read-decide-write sequence of one event never interleaves with
// another operation on that event, while unrelated events proceed in parallel.
//
// Lock order: the membership lock and a cell lock are never held together.
type Engine struct {
	clock clock.Clock
	ids   idgen.Generator

	mu    sync.RWMutex              // guards map membership only
	cells map[string]*eventCell     // event id -> guarded state cell
	index map[uuid.UUID]*eventCell  // reservation id -> owning cell
}

type eventCell struct {
	mu           sync.RWMutex
	event        *event.Event
	reservations map[uuid.UUID]*reservation.Reservation
}

func NewEngine(clk clock.Clock, ids idgen.Generator) *Engine {
	return &Engine{
		clock: clk,
		ids:   ids,
		cells: make(map[string]*eventCell),
		index: make(map[uuid.UUID]*eventCell),
	}
}

// InitializeEvent provisions an event before traffic is accepted. Event
// membership is treated as read-only afterwards; seeding an existing id fails.
func (e *Engine) InitializeEvent(_ context.Context, eventID, name string, totalSeats int) error {
	ev, err := event.NewEvent(eventID, name, totalSeats)
	if err != nil {
		return infra.WrapStoreErr(infra.KindInvalidArgument, "invalid event definition", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.cells[eventID]; exists {
		return infra.WrapStoreErr(infra.KindAlreadyExists, "event already initialized: "+eventID, nil)
	}
	e.cells[eventID] = &eventCell{
		event:        ev,
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
	return nil
}

// CreateReservation atomically claims seats and appends the ledger record.
// Either both the event update and the reservation insert become visible, or
// neither does; failure leaves the cell untouched.
func (e *Engine) CreateReservation(_ context.Context, eventID, partnerID string, seats int) (*commands.ReservationSnapshot, error) {
	cell, ok := e.lookupCell(eventID)
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "event not found: "+eventID, nil)
	}

	id := e.ids.NewID()
	now := e.clock.Now()

	cell.mu.Lock()
	rec, err := reservation.NewReservation(id, eventID, partnerID, seats, now)
	if err != nil {
		cell.mu.Unlock()
		return nil, infra.WrapStoreErr(infra.KindInvalidArgument, "invalid reservation request", err)
	}
	if err := cell.event.Allocate(seats); err != nil {
		cell.mu.Unlock()
		if errors.Is(err, event.ErrInsufficientSeats) {
			return nil, infra.WrapStoreErr(infra.KindInsufficientCapacity, "not enough seats left", err)
		}
		return nil, infra.WrapStoreErr(infra.KindInvalidArgument, "invalid seat count", err)
	}
	cell.reservations[id] = rec
	snap := snapshotReservation(rec)
	cell.mu.Unlock()

	e.mu.Lock()
	e.index[id] = cell
	e.mu.Unlock()

	return snap, nil
}

// CancelReservation returns the seats to the pool and flips the record to its
// terminal state as one atomic pair. Cancelling a terminal record is a
// distinct no-op failure; nothing mutates.
func (e *Engine) CancelReservation(_ context.Context, reservationID uuid.UUID) (*commands.ReservationSnapshot, error) {
	e.mu.RLock()
	cell, ok := e.index[reservationID]
	e.mu.RUnlock()
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "reservation not found: "+reservationID.String(), nil)
	}

	now := e.clock.Now()

	cell.mu.Lock()
	defer cell.mu.Unlock()

	rec := cell.reservations[reservationID]
	if rec.IsCancelled() {
		return nil, infra.WrapStoreErr(infra.KindTerminalState, "reservation already cancelled", reservation.ErrAlreadyCancelled)
	}
	if err := cell.event.Release(rec.Seats()); err != nil {
		// Only reachable if the conservation invariant was already broken.
		return nil, infra.WrapStoreErr(infra.KindCorruptedState, "seat release exceeds capacity", err)
	}
	if err := rec.Cancel(now); err != nil {
		return nil, infra.WrapStoreErr(infra.KindTerminalState, "reservation already cancelled", err)
	}
	return snapshotReservation(rec), nil
}

func (e *Engine) lookupCell(eventID string) (*eventCell, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cell, ok := e.cells[eventID]
	return cell, ok
}
