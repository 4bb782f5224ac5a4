package audio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// writeWAV encodes d of a 440 Hz tone at sr into a temporary file.
func writeWAV(t *testing.T, sr beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	err = wav.Encode(f, newTone(440, d, 0, sr), beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadResamples(t *testing.T) {
	p := NewPlayer()
	f, err := os.Open(writeWAV(t, 44100, 500*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := p.Load("menu", f); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.Has("menu") {
		t.Fatal("track should be loaded")
	}
	d, err := p.Duration("menu")
	if err != nil {
		t.Fatal(err)
	}
	if diff := d - 500*time.Millisecond; diff < -10*time.Millisecond || diff > 10*time.Millisecond {
		t.Errorf("Duration = %v, want about 500ms", d)
	}
}

func TestLoadInvalid(t *testing.T) {
	p := NewPlayer()
	if err := p.Load("bad", bytes.NewReader([]byte("not a wav file"))); err == nil {
		t.Error("expected decode error")
	}
	if p.Has("bad") {
		t.Error("failed load should not store a track")
	}
}

func TestUnknownTrack(t *testing.T) {
	p := NewPlayer()
	if err := p.Loop("missing"); !errors.Is(err, ErrUnknownTrack) {
		t.Errorf("Loop = %v, want ErrUnknownTrack", err)
	}
	if err := p.Once("missing", 1); !errors.Is(err, ErrUnknownTrack) {
		t.Errorf("Once = %v, want ErrUnknownTrack", err)
	}
	if _, err := p.Duration("missing"); !errors.Is(err, ErrUnknownTrack) {
		t.Errorf("Duration = %v, want ErrUnknownTrack", err)
	}
}

func TestLoopReplacesMusic(t *testing.T) {
	p := NewPlayer()
	p.AddBuiltins()

	if err := p.Loop(TrackDrone); err != nil {
		t.Fatal(err)
	}
	first := p.music
	if p.Music() != TrackDrone || p.mixer.Len() != 1 {
		t.Fatalf("music = %q, mixer = %d", p.Music(), p.mixer.Len())
	}

	// same track keeps playing
	if err := p.Loop(TrackDrone); err != nil {
		t.Fatal(err)
	}
	if p.music != first {
		t.Error("looping the current track should not restart it")
	}

	if err := p.Loop(TrackSting); err != nil {
		t.Fatal(err)
	}
	if first.Streamer != nil {
		t.Error("previous music should be stopped")
	}
	if p.Music() != TrackSting {
		t.Errorf("Music = %q, want %q", p.Music(), TrackSting)
	}
}

func TestStopMusic(t *testing.T) {
	p := NewPlayer()
	p.AddBuiltins()
	if err := p.Loop(TrackDrone); err != nil {
		t.Fatal(err)
	}
	ctrl := p.music
	p.StopMusic()
	if p.Music() != "" || ctrl.Streamer != nil {
		t.Error("StopMusic should end the music track")
	}
	p.StopMusic()
}

func TestOnceMixes(t *testing.T) {
	p := NewPlayer()
	p.AddBuiltins()
	if err := p.Once(TrackSting, 0.5); err != nil {
		t.Fatal(err)
	}
	if p.mixer.Len() != 1 {
		t.Errorf("mixer = %d, want 1", p.mixer.Len())
	}
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer after Close = %d, want 0", p.mixer.Len())
	}
}

func TestVolumeAndMute(t *testing.T) {
	p := NewPlayer()
	p.SetVolume(2)
	if p.Volume() != 1 {
		t.Errorf("Volume = %v, want clamped 1", p.Volume())
	}
	p.SetVolume(0.25)
	if p.master.Volume != -2 || p.master.Silent {
		t.Errorf("master = %+v, want volume -2", p.master)
	}

	p.SetMuted(true)
	if !p.Muted() || !p.master.Silent {
		t.Error("mute should silence the master")
	}
	p.SetMuted(false)
	if p.master.Silent {
		t.Error("unmute should restore output")
	}

	p.SetVolume(0)
	if !p.master.Silent {
		t.Error("zero volume should be silent")
	}
}

func TestGain(t *testing.T) {
	if g := gain(nil, 0.5); g.Volume != -1 || g.Silent {
		t.Errorf("gain(0.5) = %+v", g)
	}
	if g := gain(nil, 1); g.Volume != 0 {
		t.Errorf("gain(1) = %+v", g)
	}
	if g := gain(nil, -1); !g.Silent {
		t.Errorf("gain(-1) should be silent")
	}
}

func TestAddBuiltinsKeepsLoaded(t *testing.T) {
	p := NewPlayer()
	p.Add(TrackSting, newTone(880, 10*time.Millisecond, 0, sampleRate), sampleRate)
	p.AddBuiltins()
	d, _ := p.Duration(TrackSting)
	if d > 20*time.Millisecond {
		t.Errorf("AddBuiltins replaced a loaded sting: %v", d)
	}
	if !p.Has(TrackDrone) {
		t.Error("drone should be added")
	}
}
