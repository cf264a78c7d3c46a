package engine

import (
	"time"

	"github.com/lixenwraith/reef-dash/constants"
)

// Token identifies a scheduled task for cancellation and retiming
// The zero Token is never issued
type Token uint64

type scheduledTask struct {
	token     Token
	interval  time.Duration // Zero for frame tasks
	acc       time.Duration
	onFrame   func(dt time.Duration)
	onTick    func()
	cancelled bool
}

// Scheduler runs frame tasks and fixed-interval tasks from measured elapsed time
// All tasks execute on the goroutine calling Advance; interval tasks accumulate
// elapsed time so their rate does not depend on how often Advance is called
type Scheduler struct {
	tasks      []*scheduledTask
	nextToken  Token
	paused     bool
	maxCatchUp int
	advancing  bool
}

// NewScheduler creates an empty, running scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextToken:  1,
		maxCatchUp: constants.MaxCatchUp,
	}
}

func (s *Scheduler) add(t *scheduledTask) Token {
	t.token = s.nextToken
	s.nextToken++
	s.tasks = append(s.tasks, t)
	return t.token
}

// EveryFrame runs fn on every Advance with the elapsed delta
func (s *Scheduler) EveryFrame(fn func(dt time.Duration)) Token {
	return s.add(&scheduledTask{onFrame: fn})
}

// Every runs fn each time interval of elapsed time accumulates
// Non-positive intervals are raised to one millisecond
func (s *Scheduler) Every(interval time.Duration, fn func()) Token {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(&scheduledTask{interval: interval, onTick: fn})
}

// SetInterval retimes an interval task; accumulated time is kept
func (s *Scheduler) SetInterval(tok Token, interval time.Duration) bool {
	if interval <= 0 {
		interval = time.Millisecond
	}
	for _, t := range s.tasks {
		if t.token == tok && !t.cancelled && t.interval > 0 {
			t.interval = interval
			return true
		}
	}
	return false
}

// Interval returns the current period of an interval task
func (s *Scheduler) Interval(tok Token) (time.Duration, bool) {
	for _, t := range s.tasks {
		if t.token == tok && !t.cancelled && t.interval > 0 {
			return t.interval, true
		}
	}
	return 0, false
}

// Cancel stops a task; safe to call from inside a running task, including on itself
func (s *Scheduler) Cancel(tok Token) bool {
	for _, t := range s.tasks {
		if t.token == tok && !t.cancelled {
			t.cancelled = true
			s.compact()
			return true
		}
	}
	return false
}

// CancelAll stops every task
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.compact()
}

// compact drops cancelled tasks unless Advance is iterating
func (s *Scheduler) compact() {
	if s.advancing {
		return
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept
}

// Pause suspends all tasks without losing accumulated time
func (s *Scheduler) Pause()  { s.paused = true }
func (s *Scheduler) Resume() { s.paused = false }

func (s *Scheduler) Paused() bool { return s.paused }

// Len returns the number of live tasks
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance runs due work for dt of elapsed time
// Tasks registered during Advance first run on the next call
// Interval tasks fire at most maxCatchUp times per call, excess backlog is dropped
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused || dt <= 0 {
		return
	}

	s.advancing = true
	pending := len(s.tasks)
	for i := 0; i < pending; i++ {
		t := s.tasks[i]
		if t.cancelled {
			continue
		}

		if t.interval == 0 {
			t.onFrame(dt)
			continue
		}

		t.acc += dt
		fired := 0
		for t.acc >= t.interval && fired < s.maxCatchUp && !t.cancelled {
			t.acc -= t.interval
			fired++
			t.onTick()
		}
		if !t.cancelled && t.acc >= t.interval {
			t.acc %= t.interval
		}
	}
	s.advancing = false
	s.compact()
}
