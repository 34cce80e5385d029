package domain

import "errors"

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrFlightFull      = errors.New("no seats available on this flight")
	ErrNoBookings      = errors.New("no bookings to cancel")
	ErrInvalidCapacity = errors.New("capacity must not be negative")
)

// Outcome is the result of a book or cancel request as shown to users.
type Outcome string

const (
	OutcomeSuccess        Outcome = "SUCCESS"
	OutcomeFull           Outcome = "FULL"
	OutcomeNoBookings     Outcome = "NO_BOOKINGS"
	OutcomeFlightNotFound Outcome = "FLIGHT_NOT_FOUND"
	OutcomeError          Outcome = "ERROR"
)

type Operation string

const (
	OperationBook   Operation = "book"
	OperationCancel Operation = "cancel"
)

func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrFlightFull):
		return OutcomeFull
	case errors.Is(err, ErrNoBookings):
		return OutcomeNoBookings
	case errors.Is(err, ErrFlightNotFound):
		return OutcomeFlightNotFound
	default:
		return OutcomeError
	}
}

// Message returns the line printed for this outcome of op.
func (o Outcome) Message(op Operation) string {
	switch o {
	case OutcomeSuccess:
		if op == OperationCancel {
			return "Seat canceled successfully."
		}
		return "Seat booked successfully."
	case OutcomeFull:
		return "No seats available on this flight."
	case OutcomeNoBookings:
		return "No bookings to cancel."
	case OutcomeFlightNotFound:
		return "Flight not found."
	default:
		return "Request failed."
	}
}
