// Package audio plays the menu music and stings through a beep mixer.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(48000)

	// resampleQuality is the beep.Resample quality used for assets recorded
	// at another rate.
	resampleQuality = 4
)

// ErrUnknownTrack is returned when a track name was never loaded.
var ErrUnknownTrack = errors.New("audio: unknown track")

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player keeps decoded tracks in memory and mixes one looping music track
// with any number of one-shot sounds. Playback starts with Init; before
// that, calls only update the mixer state.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	tracks      map[string]*beep.Buffer
	music       *beep.Ctrl
	musicName   string
	volume      float64
	muted       bool
	initialized bool
}

// NewPlayer creates a player at full volume.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		master: gain(mixer, 1),
		tracks: make(map[string]*beep.Buffer),
		volume: 1,
	}
}

// Init opens the audio device and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Close stops every sound. The device stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.locked(func() {
		p.mixer.Clear()
		p.music = nil
		p.musicName = ""
	})
	p.initialized = false
}

// locked runs fn while holding the speaker lock, when the speaker runs.
func (p *Player) locked(fn func()) {
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Load decodes a WAV stream and stores it under name, resampled to the
// player rate.
func (p *Player) Load(name string, r io.Reader) error {
	s, f, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("audio: decode %q: %w", name, err)
	}
	defer s.Close()
	p.Add(name, s, f.SampleRate)
	return nil
}

// Add buffers a finite streamer recorded at rate under name.
func (p *Player) Add(name string, s beep.Streamer, rate beep.SampleRate) {
	if rate != sampleRate {
		s = beep.Resample(resampleQuality, rate, sampleRate, s)
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)

	p.mu.Lock()
	p.tracks[name] = buf
	p.mu.Unlock()
}

// Has reports whether a track is loaded.
func (p *Player) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.tracks[name]
	return ok
}

// Duration returns the length of a loaded track.
func (p *Player) Duration(name string) (time.Duration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf, ok := p.tracks[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	return sampleRate.D(buf.Len()), nil
}

// Loop plays name forever as the music track, replacing the current one.
// Looping the track already playing is a no-op.
func (p *Player) Loop(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.tracks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	if p.music != nil && p.musicName == name {
		return nil
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	p.locked(func() {
		if p.music != nil {
			p.music.Streamer = nil
		}
		p.mixer.Add(ctrl)
	})
	p.music = ctrl
	p.musicName = name
	return nil
}

// Once plays name a single time at the given linear volume.
func (p *Player) Once(name string, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.tracks[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTrack, name)
	}
	s := gain(buf.Streamer(0, buf.Len()), volume)
	p.locked(func() { p.mixer.Add(s) })
	return nil
}

// StopMusic ends the music track.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	p.locked(func() { p.music.Streamer = nil })
	p.music = nil
	p.musicName = ""
}

// Music returns the name of the looping track, or "".
func (p *Player) Music() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicName
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = math.Max(0, math.Min(1, v))
	p.applyMaster()
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetMuted silences or restores all output.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.applyMaster()
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) applyMaster() {
	g := gain(nil, p.volume)
	p.locked(func() {
		p.master.Volume = g.Volume
		p.master.Silent = g.Silent || p.muted
	})
}

// gain wraps s in a volume effect for a linear volume.
func gain(s beep.Streamer, v float64) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(v, 1e-6)),
		Silent:   v <= 0,
	}
}
