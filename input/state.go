package input

// InputMode selects how keys are parsed
// Kept in sync by the session manager via Machine.SetMode()
type InputMode uint8

const (
	ModePlay      InputMode = iota // Running session, movement and session commands
	ModeMenu                       // Idle or paused screen, s starts a run
	ModeNameEntry                  // Game-over screen, runes edit the player name
)
