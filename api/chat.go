package api

import (
	"net/http"

	"github.com/finestevents/backend/internal/service/chat"
	"github.com/finestevents/backend/internal/service/pricing"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service chat.ChatUseCase
}

type chatRequest struct {
	Messages []chat.Message `json:"messages" binding:"required,min=1,dive"`
}

func NewChatHandler(service chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Register(public *gin.RouterGroup) {
	public.POST("/chat", h.chat)
	public.POST("/estimate", h.estimate)
}

func (h *ChatHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		serviceError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

type estimateRequest struct {
	EventType string `json:"eventType" binding:"required"`
	Guests    int    `json:"guests" binding:"required,gte=1"`
	Location  string `json:"location" binding:"required"`
	Decor     string `json:"decor" binding:"required"`
}

func (h *ChatHandler) estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	amount, err := pricing.Estimate(req.EventType, req.Guests, req.Location, req.Decor)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount, "currency": "INR"})
}
