package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/airreservation/internal/kafka"
)

// Sender turns seat events into notification lines. There is no mail
// transport yet; lines go to the configured writer.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(_ context.Context, event kafka.SeatEvent) error {
	var action string
	switch event.Type {
	case kafka.EventSeatBooked:
		action = "seat booked"
	case kafka.EventSeatCancelled:
		action = "seat cancelled"
	default:
		return fmt.Errorf("unknown seat event type %q", event.Type)
	}

	_, err := fmt.Fprintf(s.out, "notify: %s on flight %s to %s (%d/%d booked)\n",
		action, event.FlightNumber, event.Destination, event.SeatsBooked, event.Capacity)
	return err
}
