package response

import (
	"time"

	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ReservationID uuid.UUID  `json:"reservationId"`
	EventID       string     `json:"eventId"`
	PartnerID     string     `json:"partnerId"`
	Seats         int        `json:"seats"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

type EventSummaryResponse struct {
	EventID          string `json:"eventId"`
	Name             string `json:"name"`
	TotalSeats       int    `json:"totalSeats"`
	AvailableSeats   int    `json:"availableSeats"`
	ReservationCount int    `json:"reservationCount"`
	Version          int64  `json:"version"`
}

func FromReservationSnapshot(snap *commands.ReservationSnapshot) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: snap.ID,
		EventID:       snap.EventID,
		PartnerID:     snap.PartnerID,
		Seats:         snap.Seats,
		Status:        snap.Status,
		CreatedAt:     snap.CreatedAt,
		CancelledAt:   snap.CancelledAt,
	}
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: view.ID,
		EventID:       view.EventID,
		PartnerID:     view.PartnerID,
		Seats:         view.Seats,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
		CancelledAt:   view.CancelledAt,
	}
}

func FromEventSummaryView(view *queries.EventSummaryView) *EventSummaryResponse {
	return &EventSummaryResponse{
		EventID:          view.EventID,
		Name:             view.Name,
		TotalSeats:       view.TotalSeats,
		AvailableSeats:   view.AvailableSeats,
		ReservationCount: view.ReservationCount,
		Version:          view.Version,
	}
}
