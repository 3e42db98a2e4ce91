//go:build unit || e2e

package authstub

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chat-login-client/internal/pkg/clock"
	"chat-login-client/internal/pkg/jwt"
	"chat-login-client/internal/pkg/password"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// Server is an in-process stand-in for the auth service's login endpoint:
// bcrypt verification, token issue on success, error envelope on rejection.
type Server struct {
	Engine *gin.Engine

	users      map[string]User
	jwtService *jwt.Service
	hits       atomic.Int64
}

func New(t *testing.T, users ...User) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	s := &Server{
		Engine:     gin.New(),
		users:      make(map[string]User, len(users)),
		jwtService: jwt.NewService("test-secret", time.Hour, clock.NewRealClock()),
	}
	for _, u := range users {
		s.users[u.Username] = u
	}

	s.Engine.POST("/api/auth/login", s.handleLogin)
	return s
}

// Start serves the stub over a real listener and shuts it down with the test.
func (s *Server) Start(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(s.Engine)
	t.Cleanup(srv.Close)
	return srv
}

// Hits reports how many login requests reached the stub.
func (s *Server) Hits() int64 {
	return s.hits.Load()
}

func (s *Server) handleLogin(c *gin.Context) {
	s.hits.Add(1)

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request format"}})
		return
	}

	user, ok := s.users[req.Username]
	if !ok || password.ComparePassword(user.PasswordHash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid credentials"}})
		return
	}

	token, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         gin.H{"id": user.ID, "username": user.Username},
	})
}
