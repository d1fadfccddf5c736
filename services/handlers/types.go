package handlers

import (
	"context"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/model"
)

type DeviceServiceInterface interface {
	CreateOrGetSession(deviceID string) (*dto.DeviceSessionResponse, error)
}

type StatsServiceInterface interface {
	Load(subject string) (model.UserStats, error)
	RecordCompletion(subject string, minutes int, task string) (model.UserStats, error)
	History(subject string, limit int) (*dto.SessionHistoryResponse, error)
}

type AchievementServiceInterface interface {
	GetAchievements(subject string) (*dto.AchievementsResponse, error)
}

type TimerServiceInterface interface {
	StartCountdown(subject, task string, durationSeconds int) *dto.TimerStateResponse
	PauseCountdown(subject string) (*dto.TimerStateResponse, error)
	ResumeCountdown(subject string) (*dto.TimerStateResponse, error)
	AbandonCountdown(subject string) error
	CountdownState(subject string) (*dto.TimerStateResponse, error)
}

type BreakdownServiceInterface interface {
	GetTaskBreakdown(ctx context.Context, task string) []model.TaskStep
	GetVictoryTitle(ctx context.Context, task string) string
}

type ShareServiceInterface interface {
	CreateShareContent(subject, shareType string) (*dto.ShareResponse, error)
}
