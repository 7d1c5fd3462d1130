// Package timer provides a simple stage-aware timer used for timing output
// in command handlers.
package timer

import "time"

// Timer measures total elapsed time and the elapsed time of the current stage.
type Timer interface {
	// Start begins timing. Calling Start again resets the timer.
	Start()
	// NewStage marks the beginning of a new stage.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the
	// current stage.
	GetTiming() (total, stage time.Duration)
}

type realTimer struct {
	start      time.Time
	stageStart time.Time
}

// New creates a new Timer.
func New() Timer {
	return &realTimer{}
}

func (t *realTimer) Start() {
	now := time.Now()
	t.start = now
	t.stageStart = now
}

func (t *realTimer) NewStage() {
	t.stageStart = time.Now()
}

func (t *realTimer) GetTiming() (time.Duration, time.Duration) {
	if t.start.IsZero() {
		return 0, 0
	}

	now := time.Now()

	return now.Sub(t.start), now.Sub(t.stageStart)
}
