package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boardapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware(origins))

	r.GET("/boards", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	// Arrange
	router := setupRouter([]string{"http://localhost:3000"})

	req, _ := http.NewRequest("GET", "/boards", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	// Arrange
	router := setupRouter([]string{"http://localhost:3000"})

	req, _ := http.NewRequest("OPTIONS", "/boards", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	// Arrange
	router := setupRouter([]string{"http://localhost:3000"})

	req, _ := http.NewRequest("GET", "/boards", nil)
	req.Header.Set("Origin", "http://evil.example.com")

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}
