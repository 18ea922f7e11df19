// Package noise provides the deterministic terrain/biome/detail functions
// voxelcore's generator queries for every world column. All three channels
// are pure functions of (x, z, seed): two calls with identical inputs return
// bit-identical results, which is the contract chunk seams rely on (spec.md
// §4.2, §8 property 2).
package noise

import "github.com/aquilax/go-perlin"

// Frequencies match spec.md §4.2's bands.
const (
	terrainFrequency = 0.002
	biomeFrequency   = 0.0001
	detailFrequency  = 0.004

	terrainOctaves = 4
	biomeOctaves   = 3

	// persistence/lacunarity-like shaping passed to go-perlin's alpha/beta.
	// go-perlin accumulates n octaves internally; alpha controls per-octave
	// amplitude falloff and beta controls per-octave frequency growth,
	// mirroring the fBm persistence/lacunarity pair the teacher's hand
	// rolled octaveNoise2D used (internal/world/noise.go).
	persistence = 2.0
	lacunarity  = 2.0
)

// Field is an immutable NoiseField configuration shared by every generator
// worker. It is safe for concurrent reads once constructed: the three
// *perlin.Perlin generators it owns are never mutated after New returns.
type Field struct {
	seed int64

	terrain *perlin.Perlin
	biome   *perlin.Perlin
	detail  *perlin.Perlin
}

// New builds a NoiseField for the given world seed. Each channel is seeded
// from a distinct offset of the single seed (terrain uses seed, biome
// seed+1, detail seed+2) so the three fields are decorrelated without
// requiring three independently-chosen seeds, mirroring the teacher's
// per-channel seed offsetting (internal/world/bio_generator.go's
// minLimitNoise/maxLimitNoise split).
func New(seed int64) *Field {
	return &Field{
		seed:    seed,
		terrain: perlin.NewPerlin(persistence, lacunarity, terrainOctaves, seed),
		biome:   perlin.NewPerlin(persistence, lacunarity, biomeOctaves, seed+1),
		detail:  perlin.NewPerlin(persistence, lacunarity, 3, seed+2),
	}
}

// Seed returns the world seed this field was constructed with.
func (f *Field) Seed() int64 {
	return f.seed
}

// Terrain returns a value in [0,1]: low-frequency fBm used as the raw
// "how tall" signal before biome-band composition (spec.md §4.2).
func (f *Field) Terrain(x, z float64) float64 {
	return unit(f.terrain.Noise2D(x*terrainFrequency, z*terrainFrequency))
}

// Biome returns a value in [0,1]: very-low-frequency fBm that selects which
// of the three biome bands a column falls into.
func (f *Field) Biome(x, z float64) float64 {
	return unit(f.biome.Noise2D(x*biomeFrequency, z*biomeFrequency))
}

// Detail returns a value in [-1,1]: medium-frequency fBm available for
// optional surface variation (e.g. small height jitter, decoration
// placement). Not required by the height composition in spec.md §4.2.
func (f *Field) Detail(x, z float64) float64 {
	v := f.detail.Noise2D(x*detailFrequency, z*detailFrequency)
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	return v
}

// unit maps go-perlin's roughly [-1,1] output into a clamped [0,1] range.
func unit(v float64) float64 {
	v = (v + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
