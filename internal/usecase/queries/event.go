package queries

import (
	"context"

	"ticketboss/internal/infra"
	"ticketboss/internal/pkg/errs"
)

// EventSummaryView is the aggregated read model for one event.
// ReservationCount is the seat total over confirmed reservations, so the
// conservation invariant reads AvailableSeats + ReservationCount == TotalSeats.
type EventSummaryView struct {
	EventID          string `json:"event_id"`
	Name             string `json:"name"`
	TotalSeats       int    `json:"total_seats"`
	AvailableSeats   int    `json:"available_seats"`
	ReservationCount int    `json:"reservation_count"`
	Version          int64  `json:"version"`
}

type EventQueries interface {
	GetSummary(ctx context.Context, eventID string) (*EventSummaryView, error)
}

// EventReadStore is the read-side port served by the inventory engine.
type EventReadStore interface {
	EventSummary(ctx context.Context, eventID string) (*EventSummaryView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) GetSummary(ctx context.Context, eventID string) (*EventSummaryView, error) {
	view, err := q.store.EventSummary(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Wrap(err, "failed to build event summary")
	}
	return view, nil
}
