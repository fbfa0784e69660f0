package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"fitforge/coaching-app/internal/domain"
	"fitforge/coaching-app/internal/observability"
	"fitforge/coaching-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSessionIDsRequired = errors.New("athlete ID and program ID are required")
)

// SessionService tracks live workout sessions and turns each finished
// session into a WorkoutCompletion record.
type SessionService interface {
	// Start begins a session for the (athlete, program) pair. Starting an
	// already-active session is idempotent: the original start time is kept.
	Start(ctx context.Context, athleteID, programID string) (domain.SessionState, error)
	// Stop ends the session and appends a WorkoutCompletion. Stopping a
	// session that was never started is a no-op and returns (nil, nil).
	Stop(ctx context.Context, athleteID, programID string) (*domain.WorkoutCompletion, error)
	// Get reads the current timer state for the pair. An inactive pair
	// yields the zero SessionState.
	Get(ctx context.Context, athleteID, programID string) (domain.SessionState, error)
	// ActiveForAthlete returns the state of every active session the
	// athlete has, keyed by program id.
	ActiveForAthlete(ctx context.Context, athleteID string) (map[string]domain.SessionState, error)
	// Completions returns the athlete's workout completion log, oldest
	// first.
	Completions(ctx context.Context, athleteID string) ([]domain.WorkoutCompletion, error)
	// CompletionsForProgram returns every completion recorded against the
	// program, across athletes.
	CompletionsForProgram(ctx context.Context, programID string) ([]domain.WorkoutCompletion, error)
	// Shutdown stops the shared tick. Active sessions are abandoned, not
	// completed: timer state is transient by design.
	Shutdown()
}

type sessionKey struct {
	athleteID string
	programID string
}

type sessionTimer struct {
	startTime time.Time
	duration  int // seconds, as of the last tick
}

// sessionService implements the SessionService interface.
//
// All active sessions share ONE periodic tick rather than one timer per
// session. The tick is started when the active set becomes non-empty and
// stopped when it empties again. Each tick recomputes every duration from
// the fixed start time, so missed ticks self-correct instead of
// accumulating drift.
type sessionService struct {
	completionRepo repository.CompletionRepository
	tickInterval   time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]*sessionTimer
	ticker   *cron.Cron // nil while no session is active
}

// NewSessionService creates a session service ticking at the given
// interval (1s in production).
func NewSessionService(completionRepo repository.CompletionRepository, tickInterval time.Duration) SessionService {
	return &sessionService{
		completionRepo: completionRepo,
		tickInterval:   tickInterval,
		now:            time.Now,
		sessions:       make(map[sessionKey]*sessionTimer),
	}
}

func (s *sessionService) Start(ctx context.Context, athleteID, programID string) (domain.SessionState, error) {
	if athleteID == "" || programID == "" {
		return domain.SessionState{}, ErrSessionIDsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{athleteID: athleteID, programID: programID}
	if timer, ok := s.sessions[key]; ok {
		// Already active: keep the original start time.
		return domain.SessionState{Active: true, StartTime: timer.startTime, Duration: timer.duration}, nil
	}

	timer := &sessionTimer{startTime: s.now()}
	s.sessions[key] = timer
	observability.ActiveSessions.Inc()

	if s.ticker == nil {
		if err := s.startTickerLocked(); err != nil {
			delete(s.sessions, key)
			observability.ActiveSessions.Dec()
			return domain.SessionState{}, fmt.Errorf("start session ticker: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"athleteId": athleteID,
		"programId": programID,
	}).Info("workout session started")

	return domain.SessionState{Active: true, StartTime: timer.startTime}, nil
}

func (s *sessionService) Stop(ctx context.Context, athleteID, programID string) (*domain.WorkoutCompletion, error) {
	if athleteID == "" || programID == "" {
		return nil, ErrSessionIDsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{athleteID: athleteID, programID: programID}
	timer, ok := s.sessions[key]
	if !ok {
		// Never started: nothing to do.
		return nil, nil
	}

	completion := &domain.WorkoutCompletion{
		ProgramID: programID,
		AthleteID: athleteID,
		StartTime: timer.startTime,
		EndTime:   s.now(),
		Duration:  timer.duration,
	}
	id, err := s.completionRepo.Create(ctx, completion)
	if err != nil {
		return nil, fmt.Errorf("record workout completion: %w", err)
	}
	completion.ID = id

	delete(s.sessions, key)
	observability.ActiveSessions.Dec()
	observability.WorkoutCompletionsTotal.Inc()
	if len(s.sessions) == 0 {
		s.stopTickerLocked()
	}

	log.WithFields(log.Fields{
		"athleteId": athleteID,
		"programId": programID,
		"duration":  completion.Duration,
	}).Info("workout session completed")

	return completion, nil
}

func (s *sessionService) Get(ctx context.Context, athleteID, programID string) (domain.SessionState, error) {
	if athleteID == "" || programID == "" {
		return domain.SessionState{}, ErrSessionIDsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.sessions[sessionKey{athleteID: athleteID, programID: programID}]
	if !ok {
		return domain.SessionState{}, nil
	}
	return domain.SessionState{Active: true, StartTime: timer.startTime, Duration: timer.duration}, nil
}

func (s *sessionService) ActiveForAthlete(ctx context.Context, athleteID string) (map[string]domain.SessionState, error) {
	if athleteID == "" {
		return nil, ErrSessionIDsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	states := make(map[string]domain.SessionState)
	for key, timer := range s.sessions {
		if key.athleteID == athleteID {
			states[key.programID] = domain.SessionState{Active: true, StartTime: timer.startTime, Duration: timer.duration}
		}
	}
	return states, nil
}

func (s *sessionService) Completions(ctx context.Context, athleteID string) ([]domain.WorkoutCompletion, error) {
	if athleteID == "" {
		return nil, ErrSessionIDsRequired
	}
	return s.completionRepo.GetByAthleteID(ctx, athleteID)
}

func (s *sessionService) CompletionsForProgram(ctx context.Context, programID string) ([]domain.WorkoutCompletion, error) {
	if programID == "" {
		return nil, ErrSessionIDsRequired
	}
	return s.completionRepo.GetByProgramID(ctx, programID)
}

func (s *sessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTickerLocked()
}

// tick recomputes every active session's duration from its fixed start
// time. Never increment the previous value: a tick that arrives late must
// correct the duration, not add to the error.
func (s *sessionService) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, timer := range s.sessions {
		timer.duration = int(now.Sub(timer.startTime) / time.Second)
	}
}

func (s *sessionService) startTickerLocked() error {
	ticker := cron.New()
	if _, err := ticker.AddFunc(fmt.Sprintf("@every %s", s.tickInterval), s.tick); err != nil {
		return err
	}
	ticker.Start()
	s.ticker = ticker
	return nil
}

func (s *sessionService) stopTickerLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}
