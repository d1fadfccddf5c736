package dto

import "time"

type StatsResponse struct {
	MinutesFocused     int    `json:"minutesFocused"`
	TasksCompleted     int    `json:"tasksCompleted"`
	Streak             int    `json:"streak"`
	LastCompletionDate string `json:"lastCompletionDate,omitempty"`
}

type CompleteSessionRequest struct {
	Minutes int    `json:"minutes" validate:"required,min=1,max=180"`
	Task    string `json:"task" validate:"max=280"`
}

type FocusSessionInfo struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	Minutes     int       `json:"minutes"`
	CompletedAt time.Time `json:"completed_at"`
}

type SessionHistoryResponse struct {
	Sessions []FocusSessionInfo `json:"sessions"`
	Total    int                `json:"total"`
}
