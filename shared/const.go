package shared

const (
	DeviceID = "device_id"

	// StatsKeyPrefix namespaces the persisted stats blob, one entry per device.
	StatsKeyPrefix = "disparador_stats"

	ShareTypeSession = "session"
	ShareTypeMedal   = "medal"
	ShareTypeStreak  = "streak"
)

// StatsKey returns the storage key for a device's stats blob.
func StatsKey(deviceID string) string {
	return StatsKeyPrefix + ":" + deviceID
}
