package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	reservations reservation.ReservationUseCase
}

type bookingResponse struct {
	Outcome domain.Outcome     `json:"outcome"`
	Message string             `json:"message"`
	Flight  *domain.FlightInfo `json:"flight,omitempty"`
}

func NewBookingHandler(reservations reservation.ReservationUseCase) *BookingHandler {
	return &BookingHandler{reservations: reservations}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/:number", h.book)
	router.DELETE("/:number", h.cancel)
}

func (h *BookingHandler) book(c *gin.Context) {
	h.respond(c, domain.OperationBook, h.reservations.Book)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	h.respond(c, domain.OperationCancel, h.reservations.Cancel)
}

func (h *BookingHandler) respond(c *gin.Context, op domain.Operation, call func(context.Context, string) (domain.FlightInfo, error)) {
	flight, err := call(c.Request.Context(), c.Param("number"))
	outcome := domain.OutcomeOf(err)

	resp := bookingResponse{Outcome: outcome, Message: outcome.Message(op)}
	if outcome != domain.OutcomeFlightNotFound && outcome != domain.OutcomeError {
		resp.Flight = &flight
	}
	c.JSON(statusFor(outcome), resp)
}

func statusFor(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeFlightNotFound:
		return http.StatusNotFound
	case domain.OutcomeFull, domain.OutcomeNoBookings:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
