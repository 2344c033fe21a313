package api

import (
	"net/http"

	"github.com/finestevents/backend/internal/auth"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authenticator auth.AdminAuthenticator
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAdminHandler(authenticator auth.AdminAuthenticator) *AdminHandler {
	return &AdminHandler{authenticator: authenticator}
}

func (h *AdminHandler) Register(public *gin.RouterGroup) {
	public.POST("/admin/login", h.login)
}

// login validates credentials for the dashboard. There is no session: the
// client keeps sending the same Basic-Auth header on admin calls.
func (h *AdminHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if !h.authenticator.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
