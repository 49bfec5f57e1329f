package telemetry

import (
	"log/slog"
)

// Sink receives completed windows.
type Sink interface {
	WriteStats(WindowStats) error
}

// Collector buffers per-generation samples and emits a WindowStats every
// window generations.
type Collector struct {
	window int
	sink   Sink
	log    *slog.Logger

	first       int64
	populations []float64
	frequencies []float64
	last        WindowStats
	hasLast     bool
}

// NewCollector creates a collector. sink may be nil; logger defaults to
// slog.Default.
func NewCollector(window int, sink Sink, logger *slog.Logger) *Collector {
	if window <= 0 {
		window = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		window:      window,
		sink:        sink,
		log:         logger,
		populations: make([]float64, 0, window),
		frequencies: make([]float64, 0, window),
	}
}

// ObserveGeneration records one generation's population and tone frequency.
func (c *Collector) ObserveGeneration(generation int64, population int, frequency float64) error {
	if len(c.populations) == 0 {
		c.first = generation
	}
	c.populations = append(c.populations, float64(population))
	c.frequencies = append(c.frequencies, frequency)
	if len(c.populations) < c.window {
		return nil
	}
	return c.Flush()
}

// Flush emits the pending partial window, if any.
func (c *Collector) Flush() error {
	stats, ok := Summarize(c.first, c.populations, c.frequencies)
	c.populations = c.populations[:0]
	c.frequencies = c.frequencies[:0]
	if !ok {
		return nil
	}
	c.last, c.hasLast = stats, true
	c.log.Debug("population window", "stats", stats)
	if c.sink == nil {
		return nil
	}
	return c.sink.WriteStats(stats)
}

// Last returns the most recently completed window.
func (c *Collector) Last() (WindowStats, bool) { return c.last, c.hasLast }
