//go:build ebiten

package tone

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// playerBuffer keeps latency low so that a tone swapped every frame is heard
// promptly.
const playerBuffer = 50 * time.Millisecond

// Device plays voices through the process-wide ebiten audio context.
type Device struct {
	ctx    *audio.Context
	volume float64
}

// NewDevice creates the audio context. Only one Device may exist per process.
func NewDevice(sampleRate int, volume float64) *Device {
	return &Device{ctx: audio.NewContext(sampleRate), volume: volume}
}

// Start begins playing a new voice at freq.
func (d *Device) Start(freq float64, w Waveform) (Voice, error) {
	if w != Sine {
		return nil, fmt.Errorf("unsupported waveform %q", w)
	}
	osc := NewOscillator(freq, d.ctx.SampleRate(), d.volume)
	p, err := d.ctx.NewPlayer(osc)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	p.SetBufferSize(playerBuffer)
	p.Play()
	return &playerVoice{p: p}, nil
}

type playerVoice struct {
	p *audio.Player
}

// Stop halts playback and releases the player.
func (v *playerVoice) Stop() {
	if v.p == nil {
		return
	}
	v.p.Pause()
	_ = v.p.Close()
	v.p = nil
}
