package api

import (
	"net/http"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	reservations reservation.ReservationUseCase
}

type addCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func NewCustomerHandler(reservations reservation.ReservationUseCase) *CustomerHandler {
	return &CustomerHandler{reservations: reservations}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.add)
}

func (h *CustomerHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.reservations.ListCustomers())
}

func (h *CustomerHandler) add(c *gin.Context) {
	var req addCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := domain.Customer{Name: req.Name, Email: req.Email}
	h.reservations.AddCustomer(customer)
	c.JSON(http.StatusCreated, customer)
}
