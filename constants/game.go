package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame ticker interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the measured frame delta so a stalled terminal does not teleport entities
	MaxFrameDelta = 100 * time.Millisecond

	// MaxCatchUp is the number of missed interval firings replayed in one advance
	MaxCatchUp = 2
)

// Application identity
const (
	// AppID keys durable storage (leaderboard file directory, SQL rows)
	AppID = "reef-dash"
)
