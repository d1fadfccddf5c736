package services

import (
	"testing"
	"time"

	"github.com/disparador-app/disparador_api/shared"
)

func newTestTimerService(t *testing.T) (*TimerService, *StatsService) {
	t.Helper()
	statsSvc, _, _ := newTestStatsService(day(2026, time.March, 10))
	svc := &TimerService{
		statsSvc: statsSvc,
		active:   make(map[string]*activeCountdown),
	}
	return svc, statsSvc
}

func TestStartCountdownDefaultsToFiveMinutes(t *testing.T) {
	svc, _ := newTestTimerService(t)

	state := svc.StartCountdown("device-1", "Study", 0)
	if state.DurationSeconds != DefaultSessionSeconds {
		t.Fatalf("expected default duration %d, got %d", DefaultSessionSeconds, state.DurationSeconds)
	}
	if state.State != "running" {
		t.Fatalf("expected running state, got %q", state.State)
	}
	if state.Formatted != "05:00" {
		t.Fatalf("expected 05:00, got %q", state.Formatted)
	}
}

func TestStartCountdownReplacesExisting(t *testing.T) {
	svc, _ := newTestTimerService(t)

	svc.StartCountdown("device-1", "Old task", 120)
	state := svc.StartCountdown("device-1", "New task", 60)

	if state.Task != "New task" || state.DurationSeconds != 60 {
		t.Fatalf("expected replacement countdown, got %+v", state)
	}
	if len(svc.active) != 1 {
		t.Fatalf("expected a single active countdown, got %d", len(svc.active))
	}
}

func TestExpiredCountdownRecordsSession(t *testing.T) {
	svc, statsSvc := newTestTimerService(t)

	svc.StartCountdown("device-1", "Study", 120)
	for i := 0; i < 120; i++ {
		svc.tickAll()
	}

	if _, err := svc.CountdownState("device-1"); err == nil {
		t.Fatal("expected expired countdown to be removed")
	}

	stats, err := statsSvc.Load("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TasksCompleted != 1 {
		t.Fatalf("expected 1 completed task, got %d", stats.TasksCompleted)
	}
	if stats.MinutesFocused != 2 {
		t.Fatalf("expected 2 focused minutes, got %d", stats.MinutesFocused)
	}
}

func TestShortCountdownRecordsAtLeastOneMinute(t *testing.T) {
	svc, statsSvc := newTestTimerService(t)

	svc.StartCountdown("device-1", "Quick win", 30)
	for i := 0; i < 30; i++ {
		svc.tickAll()
	}

	stats, err := statsSvc.Load("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.MinutesFocused != 1 {
		t.Fatalf("expected 1 minute floor, got %d", stats.MinutesFocused)
	}
}

func TestPauseStopsTicking(t *testing.T) {
	svc, _ := newTestTimerService(t)

	svc.StartCountdown("device-1", "Study", 120)
	for i := 0; i < 10; i++ {
		svc.tickAll()
	}

	state, err := svc.PauseCountdown("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if state.State != "paused" || state.Remaining != 110 {
		t.Fatalf("unexpected paused state: %+v", state)
	}

	for i := 0; i < 20; i++ {
		svc.tickAll()
	}

	state, err = svc.CountdownState("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if state.Remaining != 110 {
		t.Fatalf("paused countdown lost time: %d", state.Remaining)
	}

	state, err = svc.ResumeCountdown("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if state.State != "running" {
		t.Fatalf("expected running after resume, got %q", state.State)
	}

	svc.tickAll()
	state, _ = svc.CountdownState("device-1")
	if state.Remaining != 109 {
		t.Fatalf("expected resume from frozen value, remaining = %d", state.Remaining)
	}
}

func TestAbandonDiscardsWithoutRecording(t *testing.T) {
	svc, statsSvc := newTestTimerService(t)

	svc.StartCountdown("device-1", "Study", 120)
	if err := svc.AbandonCountdown("device-1"); err != nil {
		t.Fatal(err)
	}

	stats, err := statsSvc.Load("device-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TasksCompleted != 0 || stats.MinutesFocused != 0 {
		t.Fatalf("abandon recorded a session: %+v", stats)
	}
}

func TestCountdownOperationsWithoutActiveCountdown(t *testing.T) {
	svc, _ := newTestTimerService(t)

	if _, err := svc.PauseCountdown("device-1"); err == nil {
		t.Fatal("expected error pausing missing countdown")
	} else if appErr, ok := shared.GetAppError(err); !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404 app error, got %v", err)
	}

	if _, err := svc.ResumeCountdown("device-1"); err == nil {
		t.Fatal("expected error resuming missing countdown")
	}
	if err := svc.AbandonCountdown("device-1"); err == nil {
		t.Fatal("expected error abandoning missing countdown")
	}
	if _, err := svc.CountdownState("device-1"); err == nil {
		t.Fatal("expected error reading missing countdown")
	}
}
