package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Also measures per-frame deltas for the scheduler
type PausableClock struct {
	mu sync.Mutex

	real TimeProvider

	startReal time.Time
	paused    bool
	pausedAt  time.Time     // Real time the current pause began
	pausedFor time.Duration // Cumulative completed pause duration

	lastFrame time.Time // Game time of the previous Delta call
}

// NewPausableClock creates a running clock backed by the given real time source
func NewPausableClock(real TimeProvider) *PausableClock {
	now := real.Now()
	return &PausableClock{
		real:      real,
		startReal: now,
		lastFrame: now,
	}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.nowLocked()
}

func (pc *PausableClock) nowLocked() time.Time {
	realNow := pc.real.Now()
	if pc.paused {
		realNow = pc.pausedAt
	}
	return pc.startReal.Add(realNow.Sub(pc.startReal) - pc.pausedFor)
}

// RealTime returns wall clock time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.real.Now()
}

// Resume continues game time advancement; repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.real.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.real.Now().Sub(pc.pausedAt)
	}
	return total
}

// Delta returns game time elapsed since the previous Delta call, capped at max
// A zero or negative max disables the cap
func (pc *PausableClock) Delta(max time.Duration) time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.nowLocked()
	dt := now.Sub(pc.lastFrame)
	pc.lastFrame = now
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
