package domain

import "time"

// WorkoutCompletion is the durable record of "a workout happened": created
// exactly once when a session transitions from active to inactive, never
// mutated afterward.
//
// EndTime >= StartTime always. Duration is the timer value as of the last
// tick, so a session stopped before any tick records 0 even though
// EndTime is later than StartTime.
type WorkoutCompletion struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"programId"`
	AthleteID string    `json:"athleteId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"` // elapsed seconds
}

// SessionState is the transient timer state for one (athlete, program)
// pair. It is not persisted; it is destroyed the moment the session ends,
// replaced by a WorkoutCompletion.
type SessionState struct {
	Active    bool      `json:"active"`
	StartTime time.Time `json:"startTime,omitzero"`
	Duration  int       `json:"duration"` // elapsed seconds, recomputed each tick
}
