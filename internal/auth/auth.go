// Package auth gates admin endpoints behind Basic-Auth credentials. The
// authenticator is an interface so the static two-secret implementation can
// later be swapped for a real identity provider without touching handlers.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminAuthenticator interface {
	Authenticate(username, password string) bool
}

// StaticAuthenticator compares against two configured secrets. Matching is
// case-sensitive and constant-time.
type StaticAuthenticator struct {
	username string
	password string
}

func NewStaticAuthenticator(username, password string) *StaticAuthenticator {
	return &StaticAuthenticator{username: username, password: password}
}

func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	if a.username == "" || a.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// Middleware rejects requests without valid Basic-Auth credentials. Every
// request re-authenticates from the header; there are no sessions.
func Middleware(authenticator AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !authenticator.Authenticate(username, password) {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

var _ AdminAuthenticator = (*StaticAuthenticator)(nil)
