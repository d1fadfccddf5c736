package services

import (
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/shared"
)

// ShareService builds text-only share content from current stats.
type ShareService struct {
	context.DefaultService

	statsSvc *StatsService
}

const SHARE_SVC = "share_svc"

func (svc ShareService) Id() string {
	return SHARE_SVC
}

func (svc *ShareService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ShareService) Start() error {
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	return nil
}

func (svc *ShareService) CreateShareContent(subject, shareType string) (*dto.ShareResponse, error) {
	stats, err := svc.statsSvc.Load(subject)
	if err != nil {
		return nil, err
	}

	var shareText string

	switch shareType {
	case shared.ShareTypeSession:
		shareText = fmt.Sprintf("I just beat inertia! %d tasks started and %d minutes in motion with Disparador 🚀", stats.TasksCompleted, stats.MinutesFocused)
	case shared.ShareTypeMedal:
		shareText = fmt.Sprintf("New medal unlocked in Disparador! %d tasks defeated and counting 🏅", stats.TasksCompleted)
	case shared.ShareTypeStreak:
		shareText = fmt.Sprintf("%d days in a row beating procrastination with Disparador 🔥", stats.Streak)
	default:
		return nil, shared.NewBadRequestError(errors.New("invalid share type"), "Invalid share type")
	}

	return &dto.ShareResponse{
		ShareURL:  fmt.Sprintf("https://disparador.app/shared/%s/%s", shareType, subject),
		ShareText: shareText,
		Platforms: []string{"whatsapp", "instagram", "tiktok", "twitter"},
	}, nil
}
