package voxel

import "testing"

// TestIndexBijection verifies spec property 1: idx/pos_of round-trip over
// the full cell range.
func TestIndexBijection(t *testing.T) {
	for i := 0; i < chunkVolume; i++ {
		x, y, z := PosOf(i)
		if got := Idx(x, y, z); got != i {
			t.Fatalf("Idx(PosOf(%d)) = %d, want %d", i, got, i)
		}
	}
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				i := Idx(x, y, z)
				gx, gy, gz := PosOf(i)
				if gx != x || gy != y || gz != z {
					t.Fatalf("PosOf(Idx(%d,%d,%d)) = (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestChunkOfEuclideanRemainder(t *testing.T) {
	coord, local := ChunkOf(-1, 5, 31)
	if coord != (ChunkCoord{-1, 0, 0}) {
		t.Fatalf("coord = %+v, want {-1,0,0}", coord)
	}
	if local != [3]int{31, 5, 31} {
		t.Fatalf("local = %v, want {31,5,31}", local)
	}
}

func TestBlockPredicates(t *testing.T) {
	if !Air.IsAir() {
		t.Error("Air.IsAir() = false")
	}
	if Stone.IsAir() {
		t.Error("Stone.IsAir() = true")
	}
	if Water.IsSolid() {
		t.Error("Water.IsSolid() = true, want false (non-solid for ray-cast)")
	}
	if Water.IsAir() {
		t.Error("Water.IsAir() = true, want false (non-air for meshing)")
	}
	if !Stone.IsSolid() {
		t.Error("Stone.IsSolid() = false")
	}
}

func TestDirectionNormalsAndOpposite(t *testing.T) {
	for _, d := range Directions {
		n := d.Normal()
		opp := d.Opposite().Normal()
		if n[0] != -opp[0] || n[1] != -opp[1] || n[2] != -opp[2] {
			t.Errorf("%v normal %v is not the negation of opposite %v normal %v", d, n, d.Opposite(), opp)
		}
	}
}
