package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPartnerID   = errors.New("partner id must not be empty")
	ErrInvalidSeatCount = errors.New("seat count must be positive")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Reservation is a claim on some number of seats of one event. The only
// permitted mutation after creation is the one-way transition to cancelled;
// records are never deleted, so cancelled reservations stay queryable.
type Reservation struct {
	id          uuid.UUID
	eventID     string
	partnerID   string
	seats       int
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

func NewReservation(id uuid.UUID, eventID, partnerID string, seats int, createdAt time.Time) (*Reservation, error) {
	if partnerID == "" {
		return nil, ErrEmptyPartnerID
	}
	if seats <= 0 {
		return nil, ErrInvalidSeatCount
	}
	return &Reservation{
		id:        id,
		eventID:   eventID,
		partnerID: partnerID,
		seats:     seats,
		status:    StatusConfirmed,
		createdAt: createdAt,
	}, nil
}

// Cancel transitions confirmed -> cancelled. The transition is terminal.
func (r *Reservation) Cancel(at time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	r.cancelledAt = &at
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) EventID() string         { return r.eventID }
func (r *Reservation) PartnerID() string       { return r.partnerID }
func (r *Reservation) Seats() int              { return r.seats }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
