package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/reef-dash/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave, optionally sweeping frequency
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a base-2 volume effect; non-positive gain is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Cue identifies a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueCollect
	CueHit
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueCollect:
		return "collect"
	case CueHit:
		return "hit"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	}
	return "none"
}

// Cue lengths
const (
	startDuration    = 120 * time.Millisecond
	collectDuration  = 90 * time.Millisecond
	hitDuration      = 180 * time.Millisecond
	levelNoteLength  = 110 * time.Millisecond
	gameOverDuration = 700 * time.Millisecond
	shortAttack      = 5 * time.Millisecond
	shortRelease     = 40 * time.Millisecond
)

// collectPitch raises the chirp with collectible value, one semitone per 10 points up to an octave
func collectPitch(points int) float64 {
	steps := math.Min(float64(points)/10, 12)
	return constants.CollectToneHz * math.Pow(2, steps/12)
}

// CreateStartSound is a short rising blip
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(440, 880, startDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, startDuration, shortAttack, shortRelease, rate), 0.25)
}

// CreateCollectSound is a bright sine chirp pitched by value
func CreateCollectSound(rate beep.SampleRate, points int) beep.Streamer {
	tone, err := generators.SineTone(rate, collectPitch(points))
	if err != nil {
		// Pitch above Nyquist for the rate; fall back to the base tone
		tone = NewOscillator(constants.CollectToneHz, collectDuration, WaveSine, rate)
	}
	clip := beep.Take(rate.N(collectDuration), tone)
	return newVolume(NewEnvelope(clip, collectDuration, shortAttack, shortRelease, rate), 0.6)
}

// CreateHitSound is a harsh falling saw buzz
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(constants.HitBuzzHz*1.5, constants.HitBuzzHz, hitDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, hitDuration, shortAttack, 80*time.Millisecond, rate), 0.5)
}

// CreateLevelUpSound is a three-note ascending arpeggio
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, levelNoteLength, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, levelNoteLength, shortAttack, shortRelease, rate))
	}
	return newVolume(beep.Seq(parts...), 0.5)
}

// CreateGameOverSound is a slow descending sweep
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(440, 110, gameOverDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, gameOverDuration, 20*time.Millisecond, 300*time.Millisecond, rate), 0.3)
}

// createCue builds the streamer for c; points only affects CueCollect
func createCue(c Cue, points int, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueStart:
		return CreateStartSound(rate)
	case CueCollect:
		return CreateCollectSound(rate, points)
	case CueHit:
		return CreateHitSound(rate)
	case CueLevelUp:
		return CreateLevelUpSound(rate)
	case CueGameOver:
		return CreateGameOverSound(rate)
	}
	return nil
}
