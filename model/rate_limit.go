package model

import "time"

// RateLimitConfig bounds one endpoint type with a fixed request window.
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
}
