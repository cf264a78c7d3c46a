package constants

// System priorities, lower runs first within a tick
const (
	PriorityPlayer      = 10
	PriorityScroll      = 20
	PriorityCollision   = 30
	PriorityProgression = 40
)
