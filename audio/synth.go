package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Built-in track names, available without asset files.
const (
	TrackSting = "sting"
	TrackDrone = "drone"
)

// tone is a finite sine tone with an exponential decay envelope.
type tone struct {
	freq, decay float64
	pos, length int
	sr          beep.SampleRate
}

func newTone(freq float64, d time.Duration, decay float64, sr beep.SampleRate) *tone {
	return &tone{freq: freq, decay: decay, length: sr.N(d), sr: sr}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		v := 0.3 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-g.decay*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// NewSting returns a short rising three note chime.
func NewSting(sr beep.SampleRate) beep.Streamer {
	note := sr.N(180 * time.Millisecond)
	return beep.Mix(
		newTone(220, 1200*time.Millisecond, 2.5, sr),
		beep.Seq(beep.Silence(note), newTone(330, 1000*time.Millisecond, 3, sr)),
		beep.Seq(beep.Silence(2*note), newTone(440, 800*time.Millisecond, 3.5, sr)),
	)
}

// drone is a slowly beating low pad, one cycle long so it loops cleanly.
type drone struct {
	pos, length int
	sr          beep.SampleRate
}

// NewDrone returns four seconds of a low pad suited to looping.
func NewDrone(sr beep.SampleRate) beep.Streamer {
	return &drone{length: sr.N(4 * time.Second), sr: sr}
}

func (g *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		swell := 0.5 - 0.5*math.Cos(2*math.Pi*t/4)
		l := math.Sin(2*math.Pi*55*t) + 0.5*math.Sin(2*math.Pi*110.5*t)
		r := math.Sin(2*math.Pi*55.5*t) + 0.5*math.Sin(2*math.Pi*110*t)
		samples[i][0] = 0.12 * swell * l
		samples[i][1] = 0.12 * swell * r
		g.pos++
	}
	return len(samples), true
}

func (g *drone) Err() error { return nil }

// AddBuiltins loads the synthesized sting and drone under TrackSting and
// TrackDrone unless tracks of those names exist.
func (p *Player) AddBuiltins() {
	if !p.Has(TrackSting) {
		p.Add(TrackSting, NewSting(sampleRate), sampleRate)
	}
	if !p.Has(TrackDrone) {
		p.Add(TrackDrone, NewDrone(sampleRate), sampleRate)
	}
}
