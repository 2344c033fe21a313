package api

import (
	"net/http"

	"github.com/finestevents/backend/internal/service/events"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service events.EventUseCase
}

type eventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"required"`
	Location    string `json:"location"`
	EventDate   string `json:"eventDate"`
	GuestCount  int    `json:"guestCount" binding:"omitempty,gte=1"`
	IsFeatured  bool   `json:"isFeatured"`
}

func NewEventHandler(service events.EventUseCase) *EventHandler {
	return &EventHandler{service: service}
}

// Register mounts the public reads on public and mutations on admin.
func (h *EventHandler) Register(public, admin *gin.RouterGroup) {
	public.GET("/events", h.list)
	public.GET("/events/featured", h.listFeatured)
	public.GET("/events/:id", h.get)
	admin.POST("/events", h.create)
	admin.PATCH("/events/:id", h.update)
	admin.DELETE("/events/:id", h.remove)
}

func (h *EventHandler) list(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) listFeatured(c *gin.Context) {
	events, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list featured events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) get(c *gin.Context) {
	event, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.Create(c.Request.Context(), events.EventInput(req))
	if err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) update(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.service.Update(c.Request.Context(), c.Param("id"), events.EventInput(req))
	if err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
