package dto

type MedalRequirementResponse struct {
	Kind      string `json:"kind"`
	Threshold int    `json:"threshold"`
}

type MedalResponse struct {
	Icon        string                   `json:"icon"`
	Label       string                   `json:"label"`
	Color       string                   `json:"color"`
	Requirement MedalRequirementResponse `json:"requirement"`
	Unlocked    bool                     `json:"unlocked"`
}

type NextMedalResponse struct {
	Medal           MedalResponse `json:"medal"`
	ProgressPercent int           `json:"progress_percent"`
}

type AchievementsResponse struct {
	Medals        []MedalResponse    `json:"medals"`
	UnlockedCount int                `json:"unlocked_count"`
	Total         int                `json:"total"`
	NextMedal     *NextMedalResponse `json:"next_medal,omitempty"`
}
