package services

import (
	"context"
	"testing"
	"time"

	"github.com/disparador-app/disparador_api/model"
)

type memoryGalleryCache struct {
	values map[string]string
}

func newMemoryGalleryCache() *memoryGalleryCache {
	return &memoryGalleryCache{values: map[string]string{}}
}

func (c *memoryGalleryCache) Get(_ context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *memoryGalleryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *memoryGalleryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func TestIsUnlockedThresholds(t *testing.T) {
	taskMedal := model.Medal{Requirement: model.MedalRequirement{Kind: model.RequirementTasks, Threshold: 5}}
	streakMedal := model.Medal{Requirement: model.MedalRequirement{Kind: model.RequirementStreak, Threshold: 7}}

	tests := []struct {
		name  string
		medal model.Medal
		stats model.UserStats
		want  bool
	}{
		{"tasks below threshold", taskMedal, model.UserStats{TasksCompleted: 4}, false},
		{"tasks at threshold", taskMedal, model.UserStats{TasksCompleted: 5}, true},
		{"tasks above threshold", taskMedal, model.UserStats{TasksCompleted: 50}, true},
		{"streak below threshold", streakMedal, model.UserStats{Streak: 6}, false},
		{"streak at threshold", streakMedal, model.UserStats{Streak: 7}, true},
		{"streak ignores tasks", streakMedal, model.UserStats{TasksCompleted: 100}, false},
	}

	for _, tt := range tests {
		if got := IsUnlocked(tt.medal, tt.stats); got != tt.want {
			t.Errorf("%s: IsUnlocked = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUnlockedCountAgainstFixedTable(t *testing.T) {
	// 15 tasks and a 5-day streak unlock the 1/5/15 task medals and the
	// 2/5 streak medals.
	stats := model.UserStats{TasksCompleted: 15, Streak: 5}

	if got := UnlockedCount(model.Medals, stats); got != 5 {
		t.Fatalf("UnlockedCount = %d, want 5", got)
	}
}

func TestNextMedalTableOrder(t *testing.T) {
	next := NextMedal(model.Medals, model.UserStats{})
	if next == nil {
		t.Fatal("expected a next medal for fresh stats")
	}
	if next.Requirement.Kind != model.RequirementTasks || next.Requirement.Threshold != 1 {
		t.Fatalf("expected first task medal next, got %+v", next.Requirement)
	}

	next = NextMedal(model.Medals, model.UserStats{TasksCompleted: 1})
	if next == nil || next.Requirement.Threshold == 1 {
		t.Fatalf("expected next locked medal after first unlock, got %+v", next)
	}
}

func TestNextMedalAllUnlockedFallsBackToLast(t *testing.T) {
	stats := model.UserStats{TasksCompleted: 1000, Streak: 1000}

	next := NextMedal(model.Medals, stats)
	if next == nil {
		t.Fatal("expected fallback medal, got nil")
	}
	if *next != model.Medals[len(model.Medals)-1] {
		t.Fatalf("expected last medal as fallback, got %+v", next)
	}
	if got := ProgressPercent(next, stats); got != 100 {
		t.Fatalf("fallback medal progress = %d, want 100", got)
	}
}

func TestNextMedalEmptyTable(t *testing.T) {
	if next := NextMedal(nil, model.UserStats{}); next != nil {
		t.Fatalf("expected nil for empty table, got %+v", next)
	}
}

func TestGetAchievementsGalleryCache(t *testing.T) {
	statsSvc, _, _ := newTestStatsService(day(2026, time.March, 10))
	cache := newMemoryGalleryCache()
	svc := &AchievementService{statsSvc: statsSvc, cache: cache, medals: model.Medals}
	statsSvc.Subscribe(svc.invalidateGallery)

	resp, err := svc.GetAchievements("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.UnlockedCount != 0 {
		t.Fatalf("fresh stats unlocked %d medals", resp.UnlockedCount)
	}
	if _, ok := cache.values[galleryKey("device-1")]; !ok {
		t.Fatal("gallery was not cached")
	}

	// A direct save bypasses the observers, so the cached gallery is served.
	if err := statsSvc.Save("device-1", model.UserStats{TasksCompleted: 5}); err != nil {
		t.Fatal(err)
	}
	resp, err = svc.GetAchievements("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.UnlockedCount != 0 {
		t.Fatalf("expected cached gallery, got %d unlocked", resp.UnlockedCount)
	}

	// A completion notifies observers and invalidates the cache.
	if _, err := statsSvc.RecordCompletion("device-1", 5, ""); err != nil {
		t.Fatal(err)
	}
	resp, err = svc.GetAchievements("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.UnlockedCount == 0 {
		t.Fatal("expected recomputed gallery after invalidation")
	}
}

func TestGetAchievementsCorruptCacheRecomputes(t *testing.T) {
	statsSvc, _, _ := newTestStatsService(day(2026, time.March, 10))
	cache := newMemoryGalleryCache()
	svc := &AchievementService{statsSvc: statsSvc, cache: cache, medals: model.Medals}

	cache.values[galleryKey("device-1")] = "{not json"

	resp, err := svc.GetAchievements("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Total != len(model.Medals) {
		t.Fatalf("expected recomputed gallery, got %+v", resp)
	}
}

func TestProgressPercentFloorsAndClamps(t *testing.T) {
	medal := &model.Medal{Requirement: model.MedalRequirement{Kind: model.RequirementStreak, Threshold: 10}}

	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{3, 30},
		{7, 70},
		{9, 90},
		{10, 100},
	}
	for _, tt := range tests {
		if got := ProgressPercent(medal, model.UserStats{Streak: tt.streak}); got != tt.want {
			t.Errorf("ProgressPercent(streak=%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}

	// Floor, not round: 2/3 is 66.
	third := &model.Medal{Requirement: model.MedalRequirement{Kind: model.RequirementTasks, Threshold: 3}}
	if got := ProgressPercent(third, model.UserStats{TasksCompleted: 2}); got != 66 {
		t.Errorf("ProgressPercent(2/3) = %d, want 66", got)
	}

	if got := ProgressPercent(nil, model.UserStats{}); got != 0 {
		t.Errorf("ProgressPercent(nil) = %d, want 0", got)
	}
}
