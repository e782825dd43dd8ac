package server

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// DefaultConfig returns sensible defaults, with PORT and RATE_LIMIT
// overridable from the environment.
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	if limitStr := os.Getenv("RATE_LIMIT"); limitStr != "" {
		var limit float64
		if _, err := fmt.Sscanf(limitStr, "%f", &limit); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		}
	}

	return cfg
}
