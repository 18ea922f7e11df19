// Package terrain turns the noise field into concrete per-column heights and
// per-block kinds, and runs that computation on a worker pool to build whole
// chunks (spec.md §4.2, §4.4).
package terrain

import (
	"math"

	"voxelcore/internal/noise"
	"voxelcore/internal/voxel"
)

// Sea is the fixed world-space sea level y (spec.md §4.2).
const Sea = 64

// band describes one biome band's height range and flatten exponent at its
// two endpoints; height is interpolated piecewise-linearly between bands as
// the biome value crosses band boundaries (spec.md §4.2 table).
type band struct {
	biomeLo, biomeHi float64
	minLo, minHi     float64
	maxLo, maxHi     float64
	expLo, expHi     float64
}

var bands = []band{
	{biomeLo: 0.0, biomeHi: 0.4, minLo: Sea - 40, minHi: Sea + 10, maxLo: Sea + 5, maxHi: Sea + 40, expLo: 4.0, expHi: 3.0},
	{biomeLo: 0.4, biomeHi: 0.6, minLo: Sea + 10, minHi: Sea + 50, maxLo: Sea + 40, maxHi: Sea + 180, expLo: 3.0, expHi: 1.5},
	{biomeLo: 0.6, biomeHi: 1.0, minLo: Sea + 50, minHi: Sea + 50, maxLo: Sea + 180, maxHi: Sea + 180, expLo: 1.5, expHi: 1.5},
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// HeightAt computes the terrain surface height (max_y) at world column
// (x,z). It is referentially transparent: identical (x,z,seed) always
// produce the same result, which is what makes chunk seams consistent
// (spec.md §4.2, §8 property 2/3).
func HeightAt(f *noise.Field, worldX, worldZ int32) int32 {
	x, z := float64(worldX), float64(worldZ)
	b := f.Biome(x, z)
	t := f.Terrain(x, z)

	var bd band
	switch {
	case b < 0.4:
		bd = bands[0]
	case b < 0.6:
		bd = bands[1]
	default:
		bd = bands[2]
	}

	span := bd.biomeHi - bd.biomeLo
	local := 0.0
	if span > 0 {
		local = (b - bd.biomeLo) / span
		if local < 0 {
			local = 0
		}
		if local > 1 {
			local = 1
		}
	}

	min := lerp(bd.minLo, bd.minHi, local)
	max := lerp(bd.maxLo, bd.maxHi, local)
	exp := lerp(bd.expLo, bd.expHi, local)

	height := min + math.Pow(t, exp)*(max-min)
	return int32(math.Floor(height))
}

// BlockAt selects the block kind at world (x,y,z) given the column's
// surface height maxY, per spec.md §4.2's selection rule.
func BlockAt(worldY, maxY int32) voxel.Block {
	if worldY == 0 {
		return voxel.Bedrock
	}
	if worldY < maxY {
		switch {
		case worldY > 165:
			return voxel.Snow
		case worldY > 140:
			return voxel.Stone
		case worldY == maxY-1:
			return voxel.Grass
		case worldY >= maxY-4:
			return voxel.Dirt
		default:
			return voxel.Stone
		}
	}
	if worldY < Sea {
		return voxel.Water
	}
	return voxel.Air
}
