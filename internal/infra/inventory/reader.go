package inventory

import (
	"context"

	"ticketboss/internal/infra"
	"ticketboss/internal/usecase/queries"

	"github.com/google/uuid"
)

// EventSummary aggregates one event under its cell's read lock, so the event
// row and the ledger are observed as a single snapshot. A summary taken
// entirely before or after a mutation is fine; a torn mix of the two is not.
func (e *Engine) EventSummary(_ context.Context, eventID string) (*queries.EventSummaryView, error) {
	cell, ok := e.lookupCell(eventID)
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "event not found: "+eventID, nil)
	}

	cell.mu.RLock()
	defer cell.mu.RUnlock()

	reserved := 0
	for _, rec := range cell.reservations {
		if !rec.IsCancelled() {
			reserved += rec.Seats()
		}
	}
	return &queries.EventSummaryView{
		EventID:          cell.event.ID(),
		Name:             cell.event.Name(),
		TotalSeats:       cell.event.TotalSeats(),
		AvailableSeats:   cell.event.AvailableSeats(),
		ReservationCount: reserved,
		Version:          cell.event.Version(),
	}, nil
}

func (e *Engine) FindReservation(_ context.Context, reservationID uuid.UUID) (*queries.ReservationView, error) {
	e.mu.RLock()
	cell, ok := e.index[reservationID]
	e.mu.RUnlock()
	if !ok {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "reservation not found: "+reservationID.String(), nil)
	}

	cell.mu.RLock()
	defer cell.mu.RUnlock()
	return viewReservation(cell.reservations[reservationID]), nil
}
