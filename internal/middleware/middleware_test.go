package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"organizo/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), Identity(secret))
	r.GET("/whoami", func(c *gin.Context) {
		owner, _ := OwnerID(c)
		c.JSON(http.StatusOK, gin.H{"owner": owner})
	})
	return r
}

func TestIdentityRequiresHeader(t *testing.T) {
	r := newEngine("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(UserIDHeader, "user_1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"owner":"user_1"}`, w.Body.String())
}

func TestIdentityWithTokenCheck(t *testing.T) {
	r := newEngine("edge-secret")
	token, err := utils.GenerateIdentityToken("user_1", "edge-secret", time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		name   string
		userID string
		auth   string
		want   int
	}{
		{name: "matching token", userID: "user_1", auth: "Bearer " + token, want: http.StatusOK},
		{name: "no token", userID: "user_1", want: http.StatusUnauthorized},
		{name: "token for someone else", userID: "user_2", auth: "Bearer " + token, want: http.StatusUnauthorized},
		{name: "garbage token", userID: "user_1", auth: "Bearer nope", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set(UserIDHeader, tt.userID)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}, false))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "user-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
