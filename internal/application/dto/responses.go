package dto

import "time"

// ErrorResponse is the uniform error body for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      string    `json:"uptime"`
	Environment string    `json:"environment"`
}
