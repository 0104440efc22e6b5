package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seedgen/internal/store"
)

type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer creates a new status server instance
func NewServer(st *store.Store) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		store:  st,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/stats", s.stats)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.store.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "store connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "seedgen",
		"version": "0.1.0",
	})
}

// stats reports per-collection document counts for the seeded databases
func (s *Server) stats(c *gin.Context) {
	counts, err := s.store.Counts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"counts": counts,
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
