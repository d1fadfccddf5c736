package dto

type BreakdownRequest struct {
	Task string `json:"task" validate:"required,min=3,max=280"`
}

type TaskStepResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type BreakdownResponse struct {
	Task  string             `json:"task"`
	Steps []TaskStepResponse `json:"steps"`
}

type VictoryTitleRequest struct {
	Task string `json:"task" validate:"required,min=3,max=280"`
}

type VictoryTitleResponse struct {
	Title string `json:"title"`
}
