package model

import "time"

// DayFormat is the date-only rendering used for streak comparisons. Calendar-day
// equality is what matters here, never time-of-day.
const DayFormat = "2006-01-02"

// UserStats is the persisted progress record, one JSON blob per device.
type UserStats struct {
	MinutesFocused     int    `json:"minutesFocused"`
	TasksCompleted     int    `json:"tasksCompleted"`
	Streak             int    `json:"streak"`
	LastCompletionDate string `json:"lastCompletionDate,omitempty"`
}

// StatsRecord is the key-value row holding a serialized UserStats blob.
type StatsRecord struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FocusSession is one completed focus interval, kept as append-only history.
type FocusSession struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Subject     string    `gorm:"index" json:"subject"`
	Task        string    `json:"task"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}
