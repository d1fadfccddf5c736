package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/dto"
	"github.com/disparador-app/disparador_api/model"
	"github.com/disparador-app/disparador_api/shared"
)

// BlobStore is the single-record key-value surface the stats engine persists
// to. SqliteService is the production implementation; tests substitute an
// in-memory one behind the same contract.
type BlobStore interface {
	GetBlob(key string) (string, bool, error)
	PutBlob(key, value string) error
}

// SessionLog records completed focus sessions as append-only history.
type SessionLog interface {
	AppendFocusSession(session *model.FocusSession) error
	RecentFocusSessions(subject string, limit int) ([]model.FocusSession, error)
}

// StatsService owns the persisted progress record per device: cumulative
// focus minutes, completed-session count, and the daily streak. Streak
// validity is recomputed on every read; RecordCompletion is the sole
// mutation entry point.
type StatsService struct {
	context.DefaultService

	store BlobStore
	log   SessionLog
	now   func() time.Time

	mu        sync.Mutex
	observers []func(subject string, stats model.UserStats)
}

const STATS_SVC = "stats_svc"

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	sqlSvc := svc.Service(SQLITE_SVC).(*SqliteService)
	svc.store = sqlSvc
	svc.log = sqlSvc
	return nil
}

// Subscribe registers an observer notified after every mutation. Callers that
// render stats re-fetch when notified.
func (svc *StatsService) Subscribe(fn func(subject string, stats model.UserStats)) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.observers = append(svc.observers, fn)
}

// Load returns the current stats record for subject. A missing record yields
// the zero-default record without persisting it. A corrupt record is silently
// discarded and replaced by the zero-default. If more than one whole calendar
// day has passed since the last completion, the streak is forced to 0 and the
// correction is persisted before returning.
func (svc *StatsService) Load(subject string) (model.UserStats, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.loadLocked(subject)
}

func (svc *StatsService) loadLocked(subject string) (model.UserStats, error) {
	var stats model.UserStats

	raw, found, err := svc.store.GetBlob(shared.StatsKey(subject))
	if err != nil {
		return stats, shared.NewInternalError(err, "Failed to read stats")
	}
	if !found {
		return stats, nil
	}

	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		log.WithFields(log.Fields{"subject": subject, "error": err.Error()}).
			Debug("Discarding corrupt stats record")
		return model.UserStats{}, nil
	}

	if stats.LastCompletionDate == "" {
		return stats, nil
	}

	now := svc.now()
	last, err := time.ParseInLocation(model.DayFormat, stats.LastCompletionDate, now.Location())
	if err != nil {
		log.WithFields(log.Fields{"subject": subject, "error": err.Error()}).
			Debug("Discarding stats record with unparseable completion date")
		return model.UserStats{}, nil
	}

	// Direct calendar-day arithmetic; a session completed earlier today must
	// never zero the streak on a later same-day read.
	if daysBetween(last, now) > 1 && stats.Streak != 0 {
		stats.Streak = 0
		if err := svc.saveLocked(subject, stats); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// Save serializes and persists the full record, replacing any prior value.
func (svc *StatsService) Save(subject string, stats model.UserStats) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.saveLocked(subject, stats)
}

func (svc *StatsService) saveLocked(subject string, stats model.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return shared.NewInternalError(err, "Failed to serialize stats")
	}
	if err := svc.store.PutBlob(shared.StatsKey(subject), string(raw)); err != nil {
		return shared.NewInternalError(err, "Failed to persist stats")
	}
	return nil
}

// RecordCompletion records one completed focus session: adds minutes, counts
// the task, and rolls the streak forward. Multiple sessions on the same
// calendar day leave the streak unchanged; a completion after a gap starts a
// new streak of length 1. The read-modify-write is a single locked step.
func (svc *StatsService) RecordCompletion(subject string, minutes int, task string) (model.UserStats, error) {
	svc.mu.Lock()

	stats, err := svc.loadLocked(subject)
	if err != nil {
		svc.mu.Unlock()
		return stats, err
	}

	stats.MinutesFocused += minutes
	stats.TasksCompleted++

	now := svc.now()
	today := now.Format(model.DayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(model.DayFormat)

	switch stats.LastCompletionDate {
	case "":
		stats.Streak = 1
	case today:
		// Already completed something today, streak stays the same.
	case yesterday:
		stats.Streak++
	default:
		stats.Streak = 1
	}

	stats.LastCompletionDate = today

	if err := svc.saveLocked(subject, stats); err != nil {
		svc.mu.Unlock()
		return stats, err
	}

	if svc.log != nil {
		sessionID, _ := uuid.NewV7()
		session := &model.FocusSession{
			ID:          sessionID.String(),
			Subject:     subject,
			Task:        task,
			Minutes:     minutes,
			CompletedAt: now,
			CreatedAt:   now,
		}
		if err := svc.log.AppendFocusSession(session); err != nil {
			log.Printf("Failed to append focus session for %s: %v", subject, err)
		}
	}

	observers := make([]func(string, model.UserStats), len(svc.observers))
	copy(observers, svc.observers)
	svc.mu.Unlock()

	recordSessionCompleted(minutes)

	for _, fn := range observers {
		fn(subject, stats)
	}

	return stats, nil
}

// History lists the most recent completed sessions for subject.
func (svc *StatsService) History(subject string, limit int) (*dto.SessionHistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if svc.log == nil {
		return &dto.SessionHistoryResponse{Sessions: []dto.FocusSessionInfo{}}, nil
	}

	sessions, err := svc.log.RecentFocusSessions(subject, limit)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load session history")
	}

	infos := make([]dto.FocusSessionInfo, len(sessions))
	for i, s := range sessions {
		infos[i] = dto.FocusSessionInfo{
			ID:          s.ID,
			Task:        s.Task,
			Minutes:     s.Minutes,
			CompletedAt: s.CompletedAt,
		}
	}

	return &dto.SessionHistoryResponse{Sessions: infos, Total: len(infos)}, nil
}

// daysBetween counts calendar days from a to b, ignoring time of day. The
// dates are re-anchored at UTC midnight so a DST transition (a 23- or 25-hour
// local day) cannot shift the count.
func daysBetween(a, b time.Time) int {
	dayA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	dayB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(dayB.Sub(dayA) / (24 * time.Hour))
}
