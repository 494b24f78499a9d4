package inventory

import (
	"time"

	"ticketboss/internal/domain/reservation"
	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"
)

// Snapshots are taken while the cell lock is held; callers only ever see
// immutable copies of ledger records.

func snapshotReservation(rec *reservation.Reservation) *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:          rec.ID(),
		EventID:     rec.EventID(),
		PartnerID:   rec.PartnerID(),
		Seats:       rec.Seats(),
		Status:      string(rec.Status()),
		CreatedAt:   rec.CreatedAt(),
		CancelledAt: copyTime(rec.CancelledAt()),
	}
}

func viewReservation(rec *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          rec.ID(),
		EventID:     rec.EventID(),
		PartnerID:   rec.PartnerID(),
		Seats:       rec.Seats(),
		Status:      string(rec.Status()),
		CreatedAt:   rec.CreatedAt(),
		CancelledAt: copyTime(rec.CancelledAt()),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
