package app

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
	"github.com/fandiandrian/Cellular-Automata/internal/render"
	"github.com/fandiandrian/Cellular-Automata/internal/tone"
)

type fakeSurface struct {
	frames []*image.RGBA
	err    error
}

func (s *fakeSurface) Present(frame *image.RGBA) error {
	if s.err != nil {
		return s.err
	}
	cp := *frame
	cp.Pix = append([]uint8(nil), frame.Pix...)
	s.frames = append(s.frames, &cp)
	return nil
}

type fakeVoice struct {
	freq    float64
	stopped int
	dev     *fakeDevice
}

func (v *fakeVoice) Stop() {
	v.stopped++
	v.dev.active--
}

type fakeDevice struct {
	voices    []*fakeVoice
	active    int
	maxActive int
	err       error
}

func (d *fakeDevice) Start(freq float64, w tone.Waveform) (tone.Voice, error) {
	if d.err != nil {
		return nil, d.err
	}
	if w != tone.Sine {
		return nil, errors.New("unexpected waveform")
	}
	v := &fakeVoice{freq: freq, dev: d}
	d.voices = append(d.voices, v)
	d.active++
	if d.active > d.maxActive {
		d.maxActive = d.active
	}
	return v, nil
}

type countingScheduler struct {
	waits  int
	cancel func()
	after  int
}

func (s *countingScheduler) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.waits++
	if s.cancel != nil && s.waits > s.after {
		s.cancel()
		return ctx.Err()
	}
	return nil
}

type recordingObserver struct {
	generations []int64
	populations []int
	frequencies []float64
}

func (o *recordingObserver) ObserveGeneration(g int64, pop int, freq float64) error {
	o.generations = append(o.generations, g)
	o.populations = append(o.populations, pop)
	o.frequencies = append(o.frequencies, freq)
	return nil
}

func blinker(t *testing.T) core.Generation {
	t.Helper()
	g, err := core.FromRows([][]uint8{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCycleAdvancesRendersAndSwapsTone(t *testing.T) {
	surface := &fakeSurface{}
	device := &fakeDevice{}
	loop := NewLoop(blinker(t), 2, surface, device)
	obs := &recordingObserver{}
	loop.Observe(obs)

	for i := 0; i < 4; i++ {
		if err := loop.Cycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}

	if loop.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", loop.Generation())
	}
	if !loop.Current().Equal(blinker(t)) {
		t.Fatalf("blinker should return after an even number of cycles, got\n%s", loop.Current())
	}
	if len(surface.frames) != 4 {
		t.Fatalf("presented %d frames, want 4", len(surface.frames))
	}
	// First frame shows the vertical phase: column 2, rows 1..3.
	first := surface.frames[0]
	if first.Bounds().Dx() != 10 || first.Bounds().Dy() != 10 {
		t.Fatalf("frame bounds %v, want 10x10", first.Bounds())
	}
	if got := first.RGBAAt(4, 2); got != render.On {
		t.Fatalf("expected live block at cell (2,1), got %v", got)
	}
	if got := first.RGBAAt(2, 4); got != render.Off {
		t.Fatalf("expected dead block at cell (1,2), got %v", got)
	}

	if len(device.voices) != 4 {
		t.Fatalf("started %d voices, want 4", len(device.voices))
	}
	if device.maxActive != 1 {
		t.Fatalf("%d voices overlapped, want at most 1", device.maxActive)
	}
	for i, v := range device.voices[:3] {
		if v.stopped != 1 {
			t.Fatalf("voice %d stopped %d times, want 1", i, v.stopped)
		}
	}
	if device.voices[3].stopped != 0 {
		t.Fatal("latest voice should still be playing")
	}
	if loop.Frequency() != 3*50+100 {
		t.Fatalf("frequency = %v, want 250", loop.Frequency())
	}

	if want := []int64{1, 2, 3, 4}; len(obs.generations) != 4 || obs.generations[3] != want[3] {
		t.Fatalf("observer saw generations %v", obs.generations)
	}
	for i, f := range obs.frequencies {
		if f != 250 || obs.populations[i] != 3 {
			t.Fatalf("observation %d: population %d frequency %v", i, obs.populations[i], f)
		}
	}

	loop.Close()
	if device.voices[3].stopped != 1 || device.active != 0 {
		t.Fatal("Close should stop the active voice")
	}
	loop.Close()
	if device.voices[3].stopped != 1 {
		t.Fatal("Close must not stop a voice twice")
	}
}

func TestCycleLoneCellGoesSilentAtBasePitch(t *testing.T) {
	g, err := core.FromRows([][]uint8{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	device := &fakeDevice{}
	loop := NewLoop(g, 1, &fakeSurface{}, device)
	if err := loop.Cycle(); err != nil {
		t.Fatal(err)
	}
	if loop.Current().Population() != 0 {
		t.Fatal("lone cell should die")
	}
	if device.voices[0].freq != 100 {
		t.Fatalf("frequency = %v, want 100", device.voices[0].freq)
	}
}

func TestCycleEmptyGridIsNoOp(t *testing.T) {
	surface := &fakeSurface{}
	device := &fakeDevice{}
	loop := NewLoop(core.Generation{}, 10, surface, device)
	if err := loop.Cycle(); err != nil {
		t.Fatal(err)
	}
	if len(surface.frames) != 0 || len(device.voices) != 0 {
		t.Fatal("empty grid must not render or change the tone")
	}
	if loop.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", loop.Generation())
	}
}

func TestCycleFailureKeepsCurrentGeneration(t *testing.T) {
	boom := errors.New("surface lost")
	start := blinker(t)
	loop := NewLoop(start, 1, &fakeSurface{err: boom}, &fakeDevice{})
	if err := loop.Cycle(); !errors.Is(err, boom) {
		t.Fatalf("expected surface error, got %v", err)
	}
	if !loop.Current().Equal(start) || loop.Generation() != 0 {
		t.Fatal("failed cycle must not replace the current generation")
	}

	devErr := errors.New("no audio")
	loop = NewLoop(start, 1, &fakeSurface{}, &fakeDevice{err: devErr})
	if err := loop.Cycle(); !errors.Is(err, devErr) {
		t.Fatalf("expected device error, got %v", err)
	}
	if !loop.Current().Equal(start) {
		t.Fatal("failed tone start must not replace the current generation")
	}
}

func TestRunStopsAtLimit(t *testing.T) {
	device := &fakeDevice{}
	loop := NewLoop(blinker(t), 1, &fakeSurface{}, device)
	sched := &countingScheduler{}
	if err := loop.Run(context.Background(), sched, 5); err != nil {
		t.Fatal(err)
	}
	if loop.Generation() != 5 || sched.waits != 5 {
		t.Fatalf("generation %d after %d waits, want 5", loop.Generation(), sched.waits)
	}
	if device.active != 0 {
		t.Fatal("Run should stop the voice on return")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	device := &fakeDevice{}
	loop := NewLoop(blinker(t), 1, &fakeSurface{}, device)
	sched := &countingScheduler{cancel: cancel, after: 3}
	if err := loop.Run(ctx, sched, 0); err != nil {
		t.Fatalf("cancellation should end Run cleanly, got %v", err)
	}
	if loop.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", loop.Generation())
	}
	if device.active != 0 {
		t.Fatal("Run should stop the voice on cancellation")
	}
}

func TestParameters(t *testing.T) {
	loop := NewLoop(blinker(t), 4, &fakeSurface{}, &fakeDevice{})
	if err := loop.Cycle(); err != nil {
		t.Fatal(err)
	}
	snap := loop.Parameters()
	for key, want := range map[string]string{
		"cols":       "5",
		"rows":       "5",
		"cell_size":  "4",
		"generation": "1",
		"population": "3",
		"frequency":  "250",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Errorf("%s = %q, want %q", key, p.Value, want)
		}
	}
}
