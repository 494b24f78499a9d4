package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on Read-side query types (CQRS separation)
type ReservationSnapshot struct {
	ID          uuid.UUID
	EventID     string
	PartnerID   string
	Seats       int
	Status      string
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// InventoryWriter is the mutating port of the inventory engine. Each call is
// atomic with respect to every other operation touching the same event.
type InventoryWriter interface {
	InitializeEvent(ctx context.Context, eventID, name string, totalSeats int) error
	CreateReservation(ctx context.Context, eventID, partnerID string, seats int) (*ReservationSnapshot, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (*ReservationSnapshot, error)
}
