package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStaticAuthenticator(t *testing.T) {
	a := NewStaticAuthenticator("admin", "s3cret")

	assert.True(t, a.Authenticate("admin", "s3cret"))
	assert.False(t, a.Authenticate("admin", "wrong"))
	assert.False(t, a.Authenticate("someone", "s3cret"))
	assert.False(t, a.Authenticate("Admin", "s3cret"), "username match is case-sensitive")
	assert.False(t, a.Authenticate("admin", "S3cret"), "password match is case-sensitive")
	assert.False(t, a.Authenticate("", ""))
}

func TestStaticAuthenticator_EmptyConfig(t *testing.T) {
	a := NewStaticAuthenticator("", "")
	assert.False(t, a.Authenticate("", ""), "unset credentials must never authenticate")
}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", Middleware(NewStaticAuthenticator("admin", "s3cret")), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMiddleware_MissingHeader(t *testing.T) {
	r := newProtectedRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secret", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	r := newProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Basic not-base64!!!")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_WrongCredentials(t *testing.T) {
	r := newProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.SetBasicAuth("admin", "nope")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ValidCredentials(t *testing.T) {
	r := newProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:s3cret")))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
