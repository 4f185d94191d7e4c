package app

import (
	"fmt"
	"os"

	"github.com/anandsun/peanut-butter/internal/mathutil"
)

// DefaultMaxN caps n on the HTTP surface so a single request cannot pin
// the CPU with an enormous factorial. The library itself has no limit.
const DefaultMaxN = 10000

type Config struct {
	// MaxN is the largest n the API will compute; 0 disables the cap.
	MaxN int
}

func LoadConfigFromEnv() (*Config, error) {
	cfg := &Config{MaxN: DefaultMaxN}
	if v := os.Getenv("PEANUT_MAX_N"); v != "" {
		n, err := mathutil.ParseInt(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PEANUT_MAX_N: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid PEANUT_MAX_N: must be >= 0, got %d", n)
		}
		cfg.MaxN = n
	}
	return cfg, nil
}

type Server struct {
	cfg *Config
}

func NewServer(cfg *Config) *Server { return &Server{cfg: cfg} }

// withinLimit reports whether n is small enough for the API to compute.
func (s *Server) withinLimit(n int) bool {
	return s.cfg.MaxN == 0 || n <= s.cfg.MaxN
}
