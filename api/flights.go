package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	catalogue    flights.FlightUseCase
	reservations reservation.ReservationUseCase
}

type addFlightRequest struct {
	FlightNumber string `json:"flight_number" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
	Capacity     int    `json:"capacity" binding:"min=0"`
}

func NewFlightHandler(catalogue flights.FlightUseCase, reservations reservation.ReservationUseCase) *FlightHandler {
	return &FlightHandler{catalogue: catalogue, reservations: reservations}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:number", h.get)
	router.POST("/", h.add)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.catalogue.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.catalogue.Get(c.Request.Context(), c.Param("number"))
	if errors.Is(err, domain.ErrFlightNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) add(c *gin.Context) {
	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := domain.NewFlight(req.FlightNumber, req.Destination, req.Capacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.reservations.AddFlight(c.Request.Context(), flight)

	c.JSON(http.StatusCreated, flight.Info())
}
