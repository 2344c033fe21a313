package api

import (
	"net/http"

	"github.com/finestevents/backend/internal/domain"
	"github.com/finestevents/backend/internal/service/bookings"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

type createBookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	EventType string `json:"eventType" binding:"required"`
	Guests    int    `json:"guests" binding:"required,gte=1"`
	Location  string `json:"location" binding:"required"`
	Decor     string `json:"decor" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/bookings", h.create)
	public.GET("/bookings/blocked-dates", h.blockedDates)
	admin.GET("/bookings", h.list)
	admin.POST("/bookings/:id/accepted", h.accept)
	admin.POST("/bookings/:id/rejected", h.reject)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), bookings.CreateBookingInput(req))
	if err != nil {
		serviceError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) accept(c *gin.Context) {
	h.setStatus(c, domain.BookingStatusAccepted)
}

func (h *BookingHandler) reject(c *gin.Context) {
	h.setStatus(c, domain.BookingStatusRejected)
}

func (h *BookingHandler) setStatus(c *gin.Context, status domain.BookingStatus) {
	booking, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) blockedDates(c *gin.Context) {
	dates, err := h.service.BlockedDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list blocked dates"})
		return
	}
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, dates)
}
