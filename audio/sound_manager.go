// Package audio synthesizes the demo's interaction cues over the beep
// speaker. The scene is silent except for marker placement feedback,
// so the manager carries no sample assets, only two generated tones
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/shanebenlolo/hypersphere/parameter"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and the cue mixer. Methods on an
// uninitialized manager are no-ops, so callers keep one code path
// whether or not the speaker opened
type SoundManager struct {
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent manager; Initialize opens the
// speaker
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call
// more than once
func (sm *SoundManager) Initialize() error {
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer. beep exposes no speaker close, so
// clearing the streamers is the whole shutdown
func (sm *SoundManager) Cleanup() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayMarkerDrop sounds the placement ping
func (sm *SoundManager) PlayMarkerDrop() {
	dur := time.Duration(parameter.MarkerToneMs) * time.Millisecond
	osc := NewOscillator(parameter.MarkerToneHz, dur, WaveSine, sampleRate)
	sm.play(NewEnvelope(osc, dur, dur/8, dur/2, sampleRate))
}

// PlayMiss sounds the missed-click buzz
func (sm *SoundManager) PlayMiss() {
	dur := time.Duration(parameter.MissToneMs) * time.Millisecond
	osc := NewOscillator(parameter.MissToneHz, dur, WaveSquare, sampleRate)
	sm.play(NewEnvelope(osc, dur, dur/16, dur/2, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(s, parameter.CueGain))
	speaker.Unlock()
}
