package model

import "time"

// DeviceSession is an anonymous per-device session. One device, one stats blob.
type DeviceSession struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	DeviceID     string    `gorm:"uniqueIndex" json:"device_id"`
	SessionStart time.Time `json:"session_start"`
	LastActivity time.Time `json:"last_activity"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
