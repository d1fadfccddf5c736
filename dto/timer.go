package dto

type StartTimerRequest struct {
	DurationSeconds int    `json:"duration_seconds" validate:"omitempty,min=60,max=3600"`
	Task            string `json:"task" validate:"max=280"`
}

type TimerStateResponse struct {
	State           string  `json:"state"`
	Task            string  `json:"task,omitempty"`
	DurationSeconds int     `json:"duration_seconds"`
	Remaining       int     `json:"remaining"`
	Formatted       string  `json:"formatted"`
	Progress        float64 `json:"progress"`
}
