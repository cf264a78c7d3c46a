package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays gameplay cues through a single mixer on the speaker
// It listens to session events; all methods are safe without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
	played      map[Cue]int
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: constants.CueVolume},
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores output without dropping the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	speaker.Lock()
	sm.master.Silent = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues cue c on the mixer; no-op when uninitialized or muted
func (sm *SoundManager) Play(c Cue, points int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := createCue(c, points, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c has been queued
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// CueFor maps a session event to its sound
func CueFor(ev engine.Event) Cue {
	switch ev.Type {
	case engine.EventSessionStarted:
		return CueStart
	case engine.EventCollectibleHit:
		return CueCollect
	case engine.EventObstacleHit:
		return CueHit
	case engine.EventLevelUp:
		return CueLevelUp
	case engine.EventGameOver:
		return CueGameOver
	}
	return CueNone
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventSessionStarted,
		engine.EventCollectibleHit,
		engine.EventObstacleHit,
		engine.EventLevelUp,
		engine.EventGameOver,
	}
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	cue := CueFor(ev)
	if cue == CueNone {
		return
	}
	sm.Play(cue, ev.Points)
}

