package engine

import "time"

// System is one stage of the per-tick simulation
type System interface {
	Update(s *Session, dt time.Duration)
	Priority() int // Lower values run first
}
