package constants

// UI Layout Constants
const (
	// HUDRows is the number of terminal rows reserved above the play field
	HUDRows = 1

	// StatusRows is the number of terminal rows reserved below the play field
	StatusRows = 1

	// LeaderboardSize is the default number of leaderboard entries shown
	LeaderboardSize = 5

	// MaxNameLength is the maximum rune count of a leaderboard name
	MaxNameLength = 16

	// DefaultPlayerName replaces an empty submitted name
	DefaultPlayerName = "anonymous"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "reef-dash.log"
	MaxLogSize  = 10 * 1024 * 1024
)
