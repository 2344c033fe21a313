package api

import (
	"net/http"

	"github.com/finestevents/backend/internal/service/inquiries"
	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	service inquiries.InquiryUseCase
}

type createInquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	EventType string `json:"eventType" binding:"required"`
	Message   string `json:"message" binding:"required,min=10"`
}

func NewInquiryHandler(service inquiries.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func (h *InquiryHandler) Register(public, admin *gin.RouterGroup) {
	public.POST("/inquiries", h.create)
	admin.GET("/inquiries", h.list)
	admin.PATCH("/inquiries/:id/read", h.markRead)
}

func (h *InquiryHandler) create(c *gin.Context) {
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	inquiry, err := h.service.Create(c.Request.Context(), inquiries.CreateInquiryInput(req))
	if err != nil {
		serviceError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, inquiry)
}

func (h *InquiryHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list inquiries"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *InquiryHandler) markRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
