// Package tone maps generations to a pitch and plays it as a single sine voice.
package tone

import "github.com/fandiandrian/Cellular-Automata/internal/core"

const (
	// BaseFrequency is the pitch of an empty population, in hertz.
	BaseFrequency = 100.0
	// HertzPerCell is the pitch added per live cell.
	HertzPerCell = 50.0
)

// FrequencyFor returns the tone pitch for gen. The mapping is linear in the
// population and deliberately unclamped.
func FrequencyFor(gen core.Generation) float64 {
	return float64(gen.Population())*HertzPerCell + BaseFrequency
}

// Waveform names an oscillator shape.
type Waveform string

// Sine is the only supported waveform.
const Sine Waveform = "sine"

// Voice is a playing tone.
type Voice interface {
	Stop()
}

// Silent is a tone device that plays nothing. It is used for headless runs and
// when audio is disabled.
type Silent struct{}

// Start returns a voice that does nothing.
func (Silent) Start(float64, Waveform) (Voice, error) { return silentVoice{}, nil }

type silentVoice struct{}

func (silentVoice) Stop() {}
