package dto

import "time"

type DeviceSessionRequest struct {
	DeviceID string `json:"device_id" validate:"required,device_id"`
}

type DeviceSessionResponse struct {
	SessionID string    `json:"session_id"`
	DeviceID  string    `json:"device_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
