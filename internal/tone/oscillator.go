package tone

import (
	"encoding/binary"
	"math"
)

const (
	bytesPerSample = 2
	channels       = 2
	bytesPerFrame  = bytesPerSample * channels
)

// Oscillator is an endless io.Reader of 16-bit little-endian stereo PCM for a
// sine wave. Phase starts at zero.
type Oscillator struct {
	freq       float64
	sampleRate int
	volume     float64
	pos        int64
}

// NewOscillator creates a sine oscillator. Volume is clamped to [0, 1].
func NewOscillator(freq float64, sampleRate int, volume float64) *Oscillator {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Oscillator{freq: freq, sampleRate: sampleRate, volume: volume}
}

// Frequency returns the oscillator pitch in hertz.
func (o *Oscillator) Frequency() float64 { return o.freq }

// Read fills p with whole stereo frames. It never returns an error.
func (o *Oscillator) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame * bytesPerFrame
	if o.sampleRate <= 0 {
		clear(p[:n])
		return n, nil
	}
	amp := o.volume * math.MaxInt16
	step := 2 * math.Pi * o.freq / float64(o.sampleRate)
	for i := 0; i < n; i += bytesPerFrame {
		v := int16(amp * math.Sin(step*float64(o.pos)))
		binary.LittleEndian.PutUint16(p[i:], uint16(v))
		binary.LittleEndian.PutUint16(p[i+bytesPerSample:], uint16(v))
		o.pos++
		if o.pos == int64(o.sampleRate) {
			// Wrap once per second to keep the phase argument small; this is
			// exact only for whole-hertz frequencies, which FrequencyFor yields.
			o.pos = 0
		}
	}
	return n, nil
}
