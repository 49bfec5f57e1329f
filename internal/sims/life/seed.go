package life

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"github.com/fandiandrian/Cellular-Automata/internal/core"
)

// Perlin octave settings for NoiseState.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// InitialState returns a rows×cols generation where every cell is
// independently alive with probability one half.
func InitialState(rows, cols int, rng *rand.Rand) core.Generation {
	if rows <= 0 || cols <= 0 {
		return core.Generation{}
	}
	cells := make([]uint8, rows*cols)
	for i := range cells {
		cells[i] = uint8(rng.IntN(2))
	}
	g, err := core.FromCells(rows, cols, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// NoiseState seeds cells from 2D Perlin noise: a cell is alive where the noise
// sampled at each cell centre is non-negative. The density stays close to
// one half but live cells form clusters instead of static.
func NoiseState(rows, cols int, seed int64, scale float64) core.Generation {
	if rows <= 0 || cols <= 0 {
		return core.Generation{}
	}
	if scale <= 0 {
		scale = 0.1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	cells := make([]uint8, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if p.Noise2D((float64(x)+0.5)*scale, (float64(y)+0.5)*scale) >= 0 {
				cells[y*cols+x] = 1
			}
		}
	}
	g, err := core.FromCells(rows, cols, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// Seeding selects how the first generation is populated.
type Seeding string

const (
	// SeedUniform flips an independent fair coin per cell.
	SeedUniform Seeding = "uniform"
	// SeedNoise thresholds Perlin noise.
	SeedNoise Seeding = "noise"
)

// Seed builds the first generation for the given mode. Unknown modes fall
// back to uniform seeding.
func Seed(mode Seeding, size core.Size, rng *core.RNG, noiseScale float64) core.Generation {
	if mode == SeedNoise {
		return NoiseState(size.H, size.W, rng.Seed(), noiseScale)
	}
	return InitialState(size.H, size.W, rng.Source())
}
