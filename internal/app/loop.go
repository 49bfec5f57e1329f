package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
	"github.com/fandiandrian/Cellular-Automata/internal/render"
	"github.com/fandiandrian/Cellular-Automata/internal/sims/life"
	"github.com/fandiandrian/Cellular-Automata/internal/tone"
)

// Surface receives one rendered frame per cycle.
type Surface interface {
	Present(frame *image.RGBA) error
}

// ToneDevice starts single-voice tones.
type ToneDevice interface {
	Start(freq float64, w tone.Waveform) (tone.Voice, error)
}

// Scheduler blocks until the next frame may run.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Observer is notified after every completed cycle.
type Observer interface {
	ObserveGeneration(generation int64, population int, frequency float64) error
}

// Loop owns the state that lives across cycles: the current generation, the
// voice started by the previous cycle, and the frame buffer.
type Loop struct {
	current    core.Generation
	generation int64
	cellSize   int

	surface   Surface
	device    ToneDevice
	voice     tone.Voice
	frequency float64
	frame     *image.RGBA

	observers []Observer
}

// NewLoop creates a loop that starts from initial.
func NewLoop(initial core.Generation, cellSize int, surface Surface, device ToneDevice) *Loop {
	l := &Loop{
		current:  initial,
		cellSize: cellSize,
		surface:  surface,
		device:   device,
	}
	if !initial.Empty() && cellSize > 0 {
		l.frame = image.NewRGBA(image.Rect(0, 0, initial.Cols()*cellSize, initial.Rows()*cellSize))
	}
	return l
}

// Observe registers an observer.
func (l *Loop) Observe(o Observer) {
	l.observers = append(l.observers, o)
}

// Current returns the generation held by the loop.
func (l *Loop) Current() core.Generation { return l.current }

// Generation returns the number of completed cycles.
func (l *Loop) Generation() int64 { return l.generation }

// Frequency returns the pitch of the active voice, zero before the first cycle.
func (l *Loop) Frequency() float64 { return l.frequency }

// Cycle advances one generation, presents it, and swaps the tone. On error the
// current generation is kept so the next cycle starts from the same input.
func (l *Loop) Cycle() error {
	next := life.Step(l.current)
	if next.Empty() {
		// Nothing to draw or hear; the active tone is left as is.
		l.current = next
		l.generation++
		return nil
	}

	if l.frame == nil {
		l.frame = render.RenderGeneration(next, l.cellSize)
	} else {
		render.Fill(l.frame, next, l.cellSize)
	}
	if err := l.surface.Present(l.frame); err != nil {
		return fmt.Errorf("presenting generation %d: %w", l.generation+1, err)
	}

	freq := tone.FrequencyFor(next)
	l.stopVoice()
	voice, err := l.device.Start(freq, tone.Sine)
	if err != nil {
		return fmt.Errorf("starting %.0f Hz tone: %w", freq, err)
	}
	l.voice = voice
	l.frequency = freq

	l.current = next
	l.generation++

	var errs []error
	for _, o := range l.observers {
		if err := o.ObserveGeneration(l.generation, next.Population(), freq); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run cycles until ctx is done, limit cycles have completed (limit <= 0 means
// no limit), or a cycle fails. The active voice is stopped on return.
func (l *Loop) Run(ctx context.Context, sched Scheduler, limit int64) error {
	defer l.Close()
	for n := int64(0); limit <= 0 || n < limit; n++ {
		if err := sched.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		if err := l.Cycle(); err != nil {
			return err
		}
	}
	return nil
}

// Close stops the active voice.
func (l *Loop) Close() {
	l.stopVoice()
}

func (l *Loop) stopVoice() {
	if l.voice != nil {
		l.voice.Stop()
		l.voice = nil
	}
}

// Parameters reports the loop state for display.
func (l *Loop) Parameters() core.ParameterSnapshot {
	size := l.current.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Cols", size.W),
				core.IntParam("rows", "Rows", size.H),
				core.IntParam("cell_size", "Cell", l.cellSize),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.Int64Param("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.current.Population()),
				core.FloatParam("frequency", "Tone", l.frequency, "Hz"),
			},
		},
	}}
}
