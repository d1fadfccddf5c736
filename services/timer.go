package services

import (
	"errors"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/model"
	"github.com/disparador-app/disparador_api/shared"
)

// DefaultSessionSeconds is the "5-minute rule" focus interval.
const DefaultSessionSeconds = 300

// TimerService hosts one countdown per device and drives them all from a
// single one-second ticker. The countdown itself holds no scheduling
// responsibility. When a countdown expires its session is recorded through
// the stats service.
type TimerService struct {
	context.DefaultService

	statsSvc *StatsService

	mu     sync.Mutex
	active map[string]*activeCountdown
	closed chan struct{}
}

type activeCountdown struct {
	countdown *model.Countdown
	task      string
	duration  int
}

const TIMER_SVC = "timer_svc"

func (svc TimerService) Id() string {
	return TIMER_SVC
}

func (svc *TimerService) Configure(ctx *context.Context) error {
	svc.active = make(map[string]*activeCountdown)
	svc.closed = make(chan struct{})
	return svc.DefaultService.Configure(ctx)
}

func (svc *TimerService) Start() error {
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)

	go svc.run()

	return nil
}

func (svc *TimerService) Shutdown() {
	close(svc.closed)
}

func (svc *TimerService) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			svc.tickAll()
		case <-svc.closed:
			return
		}
	}
}

func (svc *TimerService) tickAll() {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for subject, ac := range svc.active {
		ac.countdown.Tick()
		if ac.countdown.State() == model.CountdownExpired {
			delete(svc.active, subject)
		}
	}
}

// StartCountdown begins a new focus countdown for subject, discarding any
// countdown already running for it. Duration defaults to the 5-minute rule.
func (svc *TimerService) StartCountdown(subject, task string, durationSeconds int) *dto.TimerStateResponse {
	if durationSeconds <= 0 {
		durationSeconds = DefaultSessionSeconds
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, exists := svc.active[subject]; exists {
		log.WithFields(log.Fields{"subject": subject}).Info("Discarding previous countdown")
	}

	ac := &activeCountdown{task: task, duration: durationSeconds}
	ac.countdown = model.NewCountdown(durationSeconds, func() {
		svc.onExpire(subject, ac)
	})
	svc.active[subject] = ac

	return snapshot(ac)
}

// onExpire runs inside tickAll under the service lock.
func (svc *TimerService) onExpire(subject string, ac *activeCountdown) {
	minutes := ac.duration / 60
	if minutes < 1 {
		minutes = 1
	}

	if _, err := svc.statsSvc.RecordCompletion(subject, minutes, ac.task); err != nil {
		log.WithFields(log.Fields{"subject": subject, "error": err.Error()}).
			Error("Failed to record completed session")
		return
	}

	log.WithFields(log.Fields{"subject": subject, "minutes": minutes}).
		Info("Focus session completed")
}

// PauseCountdown freezes the countdown; remaining time resumes from exactly
// where it was paused.
func (svc *TimerService) PauseCountdown(subject string) (*dto.TimerStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ac, exists := svc.active[subject]
	if !exists {
		return nil, shared.NewNotFoundError(errors.New("no active countdown"), "No active countdown")
	}

	ac.countdown.Pause()
	return snapshot(ac), nil
}

func (svc *TimerService) ResumeCountdown(subject string) (*dto.TimerStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ac, exists := svc.active[subject]
	if !exists {
		return nil, shared.NewNotFoundError(errors.New("no active countdown"), "No active countdown")
	}

	ac.countdown.Resume()
	return snapshot(ac), nil
}

// AbandonCountdown discards the countdown without recording anything.
func (svc *TimerService) AbandonCountdown(subject string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, exists := svc.active[subject]; !exists {
		return shared.NewNotFoundError(errors.New("no active countdown"), "No active countdown")
	}

	delete(svc.active, subject)
	return nil
}

func (svc *TimerService) CountdownState(subject string) (*dto.TimerStateResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ac, exists := svc.active[subject]
	if !exists {
		return nil, shared.NewNotFoundError(errors.New("no active countdown"), "No active countdown")
	}

	return snapshot(ac), nil
}

func snapshot(ac *activeCountdown) *dto.TimerStateResponse {
	return &dto.TimerStateResponse{
		State:           ac.countdown.State().String(),
		Task:            ac.task,
		DurationSeconds: ac.duration,
		Remaining:       ac.countdown.Remaining(),
		Formatted:       ac.countdown.Format(),
		Progress:        ac.countdown.Progress(),
	}
}
