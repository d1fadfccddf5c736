package model

// TaskStep is one AI-generated micro-step. Ephemeral: produced fresh per task,
// never persisted. IDs are sequential and 1-based, assigned by the consumer.
type TaskStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
