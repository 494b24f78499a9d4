package event

import (
	"errors"
)

var (
	ErrEmptyEventID       = errors.New("event id must not be empty")
	ErrInvalidCapacity    = errors.New("total seats must be positive")
	ErrInvalidSeatCount   = errors.New("seat count must be positive")
	ErrInsufficientSeats  = errors.New("insufficient seats available")
	ErrCapacityOverflow   = errors.New("release would exceed total capacity")
)

// Event is the bookable entity with a fixed total capacity. availableSeats
// and version are the only mutable fields; every successful mutation bumps
// version by exactly one.
type Event struct {
	id             string
	name           string
	totalSeats     int
	availableSeats int
	version        int64
}

func NewEvent(id, name string, totalSeats int) (*Event, error) {
	if id == "" {
		return nil, ErrEmptyEventID
	}
	if totalSeats <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Event{
		id:             id,
		name:           name,
		totalSeats:     totalSeats,
		availableSeats: totalSeats,
		version:        0,
	}, nil
}

// Allocate claims seats from the available pool. On failure the event is
// left untouched, including version.
func (e *Event) Allocate(seats int) error {
	if seats <= 0 {
		return ErrInvalidSeatCount
	}
	if e.availableSeats < seats {
		return ErrInsufficientSeats
	}
	e.availableSeats -= seats
	e.version++
	return nil
}

// Release returns seats to the available pool. Exceeding the total capacity
// signals a prior conservation violation and is rejected.
func (e *Event) Release(seats int) error {
	if seats <= 0 {
		return ErrInvalidSeatCount
	}
	if e.availableSeats+seats > e.totalSeats {
		return ErrCapacityOverflow
	}
	e.availableSeats += seats
	e.version++
	return nil
}

func (e *Event) ID() string          { return e.id }
func (e *Event) Name() string        { return e.name }
func (e *Event) TotalSeats() int     { return e.totalSeats }
func (e *Event) AvailableSeats() int { return e.availableSeats }
func (e *Event) Version() int64      { return e.version }
