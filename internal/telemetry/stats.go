// Package telemetry aggregates per-generation population figures into
// windowed records for logging and CSV output.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes a run of consecutive generations.
type WindowStats struct {
	FirstGeneration int64   `csv:"first_generation"`
	LastGeneration  int64   `csv:"last_generation"`
	Generations     int     `csv:"generations"`
	PopulationMean  float64 `csv:"population_mean"`
	PopulationStd   float64 `csv:"population_std"`
	PopulationMin   float64 `csv:"population_min"`
	PopulationMax   float64 `csv:"population_max"`
	PopulationLast  int     `csv:"population_last"`
	FrequencyMean   float64 `csv:"frequency_mean"`
	FrequencyLast   float64 `csv:"frequency_last"`
}

// LogValue implements slog.LogValuer.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("generation", s.LastGeneration),
		slog.Float64("population_mean", s.PopulationMean),
		slog.Float64("population_std", s.PopulationStd),
		slog.Float64("population_min", s.PopulationMin),
		slog.Float64("population_max", s.PopulationMax),
		slog.Float64("frequency_hz", s.FrequencyLast),
	)
}

// Summarize computes window statistics over parallel population and
// frequency samples. It returns false for an empty window.
func Summarize(first int64, populations, frequencies []float64) (WindowStats, bool) {
	n := len(populations)
	if n == 0 || len(frequencies) != n {
		return WindowStats{}, false
	}
	mean, std := stat.MeanStdDev(populations, nil)
	if n < 2 {
		std = 0
	}
	return WindowStats{
		FirstGeneration: first,
		LastGeneration:  first + int64(n) - 1,
		Generations:     n,
		PopulationMean:  mean,
		PopulationStd:   std,
		PopulationMin:   floats.Min(populations),
		PopulationMax:   floats.Max(populations),
		PopulationLast:  int(populations[n-1]),
		FrequencyMean:   stat.Mean(frequencies, nil),
		FrequencyLast:   frequencies[n-1],
	}, true
}
