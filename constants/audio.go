package constants

import "time"

// Audio
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CollectToneHz is the base pitch of the collect chirp, raised by collectible value
	CollectToneHz = 660.0

	// HitBuzzHz is the pitch of the obstacle hit buzz
	HitBuzzHz = 110.0

	// CueVolume is the gain applied to all cues (beep effects.Volume, base 2)
	CueVolume = -1.0
)
