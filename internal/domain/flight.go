package domain

import "fmt"

// Flight is a bookable flight with a fixed capacity. The booked count only
// changes through BookSeat and CancelSeat and always stays in [0, capacity].
type Flight struct {
	flightNumber string
	destination  string
	capacity     int
	seatsBooked  int
}

// FlightInfo is a point-in-time copy of a Flight.
type FlightInfo struct {
	FlightNumber   string `json:"flight_number"`
	Destination    string `json:"destination"`
	Capacity       int    `json:"capacity"`
	SeatsBooked    int    `json:"seats_booked"`
	SeatsAvailable int    `json:"seats_available"`
}

// NewFlight returns a flight with no seats booked. A negative capacity is
// rejected with ErrInvalidCapacity.
func NewFlight(flightNumber, destination string, capacity int) (*Flight, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Flight{
		flightNumber: flightNumber,
		destination:  destination,
		capacity:     capacity,
	}, nil
}

// Accessors; a Flight is only changed through BookSeat and CancelSeat.

func (f *Flight) FlightNumber() string { return f.flightNumber }
func (f *Flight) Destination() string  { return f.destination }
func (f *Flight) Capacity() int        { return f.capacity }
func (f *Flight) SeatsBooked() int     { return f.seatsBooked }

// IsAvailable reports whether at least one seat is free.
func (f *Flight) IsAvailable() bool {
	return f.seatsBooked < f.capacity
}

// BookSeat takes one seat, or returns ErrFlightFull and leaves the count as is.
func (f *Flight) BookSeat() error {
	if !f.IsAvailable() {
		return ErrFlightFull
	}
	f.seatsBooked++
	return nil
}

// CancelSeat releases one seat, or returns ErrNoBookings when none are taken.
func (f *Flight) CancelSeat() error {
	if f.seatsBooked == 0 {
		return ErrNoBookings
	}
	f.seatsBooked--
	return nil
}

func (f *Flight) Info() FlightInfo {
	return FlightInfo{
		FlightNumber:   f.flightNumber,
		Destination:    f.destination,
		Capacity:       f.capacity,
		SeatsBooked:    f.seatsBooked,
		SeatsAvailable: f.capacity - f.seatsBooked,
	}
}

func (f *Flight) String() string {
	return f.Info().String()
}

func (i FlightInfo) String() string {
	return fmt.Sprintf("Flight Number: %s, Destination: %s, Capacity: %d, Seats Booked: %d",
		i.FlightNumber, i.Destination, i.Capacity, i.SeatsBooked)
}
