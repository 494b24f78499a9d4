//go:build unit || e2e

package builder

import (
	"time"

	domreservation "ticketboss/internal/domain/reservation"
	reqdto "ticketboss/internal/handler/dto/request"
	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	EventID     string
	PartnerID   string
	Seats       int
	Status      string
	CreatedAt   time.Time
	CancelledAt *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		EventID:   "node-meetup-2025",
		PartnerID: "acme-tickets",
		Seats:     3,
		Status:    "confirmed",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithSeats(seats int) *ReservationBuilder {
	b.Seats = seats
	return b
}

func (b *ReservationBuilder) WithCancelled(at time.Time) *ReservationBuilder {
	b.Status = "cancelled"
	b.CancelledAt = &at
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(b.ID, b.EventID, b.PartnerID, b.Seats, b.CreatedAt)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	eventID := b.EventID
	return reqdto.CreateReservationRequest{
		EventID:   &eventID,
		PartnerID: b.PartnerID,
		Seats:     b.Seats,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	var snap commands.ReservationSnapshot
	_ = copier.Copy(&snap, b)
	return &snap
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	var view queries.ReservationView
	_ = copier.Copy(&view, b)
	return &view
}

type EventSummaryBuilder struct {
	EventID          string
	Name             string
	TotalSeats       int
	AvailableSeats   int
	ReservationCount int
	Version          int64
}

func NewEventSummaryBuilder() *EventSummaryBuilder {
	return &EventSummaryBuilder{
		EventID:          "node-meetup-2025",
		Name:             "Node.js Meet-up",
		TotalSeats:       500,
		AvailableSeats:   497,
		ReservationCount: 3,
		Version:          1,
	}
}

func (b *EventSummaryBuilder) With(mutate func(*EventSummaryBuilder)) *EventSummaryBuilder {
	mutate(b)
	return b
}

func (b *EventSummaryBuilder) BuildView() *queries.EventSummaryView {
	var view queries.EventSummaryView
	_ = copier.Copy(&view, b)
	return &view
}
