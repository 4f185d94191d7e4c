package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anandsun/peanut-butter/internal/mathutil"
)

// NewRouterWithServer returns an http.Handler (Gin engine) with routes wired to the given Server.
func NewRouterWithServer(s *Server) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// Health checks
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Compute endpoints (support both paths for local and Vercel)
	r.GET("/factorial/:n", s.handleFactorial)
	r.GET("/api/factorial/:n", s.handleFactorial)
	r.GET("/range/:n", s.handleRange)
	r.GET("/api/range/:n", s.handleRange)

	return r
}

// RouterFromEnv creates a Server from env and returns a Gin router wired to it.
func RouterFromEnv() (http.Handler, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewRouterWithServer(NewServer(cfg)), nil
}

func (s *Server) handleFactorial(c *gin.Context) {
	n, ok := s.param(c)
	if !ok {
		return
	}
	f, err := mathutil.Factorial(n)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Decimal string: 150! has 263 digits, far past what a JSON number carries.
	c.JSON(http.StatusOK, gin.H{"n": n, "factorial": f.String()})
}

func (s *Server) handleRange(c *gin.Context) {
	n, ok := s.param(c)
	if !ok {
		return
	}
	nums, err := mathutil.Numbers(n)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"n": n, "range": nums})
}

// param parses the :n path segment and enforces the request cap. On
// failure it writes the error response and returns ok=false.
func (s *Server) param(c *gin.Context) (int, bool) {
	n, err := mathutil.ParseInt(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	if !s.withinLimit(n) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n exceeds the configured limit"})
		return 0, false
	}
	return n, true
}
