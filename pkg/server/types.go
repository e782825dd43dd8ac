package server

import (
	"time"

	"golang.org/x/time/rate"
)

// Server-local error codes; codes for calculator failures come from
// pkg/errors.
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)

// ErrorResponse is the error envelope returned by all API endpoints.
type ErrorResponse struct {
	Code      string                 `json:"code" yaml:"code"`
	Message   string                 `json:"message" yaml:"message"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string                 `json:"requestId" yaml:"requestId"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Retryable bool                   `json:"retryable" yaml:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Config holds server configuration
type Config struct {
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}
