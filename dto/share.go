package dto

type ShareResponse struct {
	ShareURL  string   `json:"share_url"`
	ShareText string   `json:"share_text"`
	Platforms []string `json:"platforms"`
}
