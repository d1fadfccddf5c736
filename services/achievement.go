package services

import (
	stdContext "context"
	"encoding/json"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/model"
)

// GalleryCache holds evaluated medal galleries for a short window, served by
// redis. A failing cache is bypassed, never surfaced.
type GalleryCache interface {
	Get(ctx stdContext.Context, key string) (string, error)
	Set(ctx stdContext.Context, key, value string, expiration time.Duration) error
	Delete(ctx stdContext.Context, keys ...string) error
}

const galleryCacheTTL = 5 * time.Minute

// AchievementService evaluates medal unlock state from current stats. Pure
// derivation over the static medal table: no mutation, no persistence, and
// unlocking is never gated by prior medals. Evaluated galleries are cached
// briefly and invalidated on every stats mutation.
type AchievementService struct {
	context.DefaultService

	statsSvc *StatsService
	cache    GalleryCache
	medals   []model.Medal
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Configure(ctx *context.Context) error {
	svc.medals = model.Medals
	return svc.DefaultService.Configure(ctx)
}

func (svc *AchievementService) Start() error {
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.cache = svc.Service(REDIS_SVC).(*RedisService)
	svc.statsSvc.Subscribe(svc.invalidateGallery)
	return nil
}

func galleryKey(subject string) string {
	return "disparador_gallery:" + subject
}

func (svc *AchievementService) invalidateGallery(subject string, _ model.UserStats) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(stdContext.Background(), galleryKey(subject)); err != nil {
		log.WithFields(log.Fields{"subject": subject, "error": err.Error()}).
			Debug("Failed to invalidate gallery cache")
	}
}

// IsUnlocked reports whether stats satisfy the medal's threshold.
func IsUnlocked(medal model.Medal, stats model.UserStats) bool {
	if medal.Requirement.Kind == model.RequirementTasks {
		return stats.TasksCompleted >= medal.Requirement.Threshold
	}
	return stats.Streak >= medal.Requirement.Threshold
}

// UnlockedCount counts unlocked medals in the table.
func UnlockedCount(medals []model.Medal, stats model.UserStats) int {
	count := 0
	for _, m := range medals {
		if IsUnlocked(m, stats) {
			count++
		}
	}
	return count
}

// NextMedal returns the first medal in table order not yet unlocked. When
// every medal is unlocked it falls back to the last medal; an empty table
// yields nil.
func NextMedal(medals []model.Medal, stats model.UserStats) *model.Medal {
	if len(medals) == 0 {
		return nil
	}
	for i := range medals {
		if !IsUnlocked(medals[i], stats) {
			return &medals[i]
		}
	}
	return &medals[len(medals)-1]
}

// ProgressPercent reports progress toward the medal, floored and clamped to
// [0, 100]. An already-unlocked medal (the all-unlocked fallback) is 100.
func ProgressPercent(medal *model.Medal, stats model.UserStats) int {
	if medal == nil {
		return 0
	}
	if IsUnlocked(*medal, stats) {
		return 100
	}

	current := stats.Streak
	if medal.Requirement.Kind == model.RequirementTasks {
		current = stats.TasksCompleted
	}

	if medal.Requirement.Threshold <= 0 {
		return 100
	}

	percent := current * 100 / medal.Requirement.Threshold
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent
}

// GetAchievements builds the evaluated medal gallery for subject, serving a
// cached copy when one is fresh.
func (svc *AchievementService) GetAchievements(subject string) (*dto.AchievementsResponse, error) {
	if svc.cache != nil {
		raw, err := svc.cache.Get(stdContext.Background(), galleryKey(subject))
		if err == nil && raw != "" {
			var cached dto.AchievementsResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			log.WithFields(log.Fields{"subject": subject}).
				Debug("Discarding corrupt gallery cache entry")
		}
	}

	stats, err := svc.statsSvc.Load(subject)
	if err != nil {
		return nil, err
	}

	medals := make([]dto.MedalResponse, len(svc.medals))
	for i, m := range svc.medals {
		medals[i] = toMedalResponse(m, stats)
	}

	resp := &dto.AchievementsResponse{
		Medals:        medals,
		UnlockedCount: UnlockedCount(svc.medals, stats),
		Total:         len(svc.medals),
	}

	if next := NextMedal(svc.medals, stats); next != nil {
		resp.NextMedal = &dto.NextMedalResponse{
			Medal:           toMedalResponse(*next, stats),
			ProgressPercent: ProgressPercent(next, stats),
		}
	}

	if svc.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := svc.cache.Set(stdContext.Background(), galleryKey(subject), string(raw), galleryCacheTTL); err != nil {
				log.WithFields(log.Fields{"subject": subject, "error": err.Error()}).
					Debug("Failed to cache gallery")
			}
		}
	}

	return resp, nil
}

func toMedalResponse(m model.Medal, stats model.UserStats) dto.MedalResponse {
	return dto.MedalResponse{
		Icon:  m.Icon,
		Label: m.Label,
		Color: m.Color,
		Requirement: dto.MedalRequirementResponse{
			Kind:      string(m.Requirement.Kind),
			Threshold: m.Requirement.Threshold,
		},
		Unlocked: IsUnlocked(m, stats),
	}
}
