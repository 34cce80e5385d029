package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
)

const menu = `
Airline Reservation System:
1. View Flights
2. View Customers
3. Book a Flight
4. Cancel a Flight
5. Exit
Choose an option: `

// Console is the interactive menu frontend. Input is read as
// whitespace-separated tokens.
type Console struct {
	in           *bufio.Scanner
	out          io.Writer
	reservations reservation.ReservationUseCase
}

func New(in io.Reader, out io.Writer, reservations reservation.ReservationUseCase) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{in: scanner, out: out, reservations: reservations}
}

// Run loops until the user exits, input ends or ctx is canceled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, menu)
		token, ok := c.next()
		if !ok {
			return c.in.Err()
		}

		option, err := strconv.Atoi(token)
		if err != nil {
			option = 0
		}

		switch option {
		case 1:
			for _, f := range c.reservations.ListFlights() {
				fmt.Fprintln(c.out, f)
			}
		case 2:
			for _, cu := range c.reservations.ListCustomers() {
				fmt.Fprintln(c.out, cu)
			}
		case 3:
			if !c.request(ctx, "Enter flight number to book: ", domain.OperationBook, c.reservations.Book) {
				return c.in.Err()
			}
		case 4:
			if !c.request(ctx, "Enter flight number to cancel: ", domain.OperationCancel, c.reservations.Cancel) {
				return c.in.Err()
			}
		case 5:
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *Console) request(ctx context.Context, prompt string, op domain.Operation, call func(context.Context, string) (domain.FlightInfo, error)) bool {
	fmt.Fprint(c.out, prompt)
	number, ok := c.next()
	if !ok {
		return false
	}
	_, err := call(ctx, number)
	fmt.Fprintln(c.out, domain.OutcomeOf(err).Message(op))
	return true
}

func (c *Console) next() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
