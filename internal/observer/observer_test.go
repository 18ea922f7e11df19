package observer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

func TestFrontAtZeroYawPitch(t *testing.T) {
	o := New(mgl32.Vec3{0, 0, 0}, 16.0/9.0)
	f := o.Front()
	want := mgl32.Vec3{1, 0, 0}
	if math.Abs(float64(f.Sub(want).Len())) > 1e-5 {
		t.Fatalf("expected front %v at yaw=pitch=0, got %v", want, f)
	}
}

func TestFrontIsAlwaysUnitLength(t *testing.T) {
	o := New(mgl32.Vec3{0, 0, 0}, 1.0)
	o.Yaw = 57
	o.SetPitch(33)
	if got := o.Front().Len(); math.Abs(float64(got)-1) > 1e-5 {
		t.Fatalf("expected unit-length front vector, got length %v", got)
	}
}

func TestSetPitchClampsToRange(t *testing.T) {
	o := New(mgl32.Vec3{}, 1.0)
	o.SetPitch(200)
	if o.Pitch != 89 {
		t.Fatalf("expected pitch clamped to 89, got %v", o.Pitch)
	}
	o.SetPitch(-200)
	if o.Pitch != -89 {
		t.Fatalf("expected pitch clamped to -89, got %v", o.Pitch)
	}
}

func TestChunkCoordMatchesVoxelChunkOf(t *testing.T) {
	o := New(mgl32.Vec3{-1.5, 40, 33}, 1.0)
	want, _ := voxel.ChunkOf(-2, 40, 33)
	if got := o.ChunkCoord(); got != want {
		t.Fatalf("expected ChunkCoord %v, got %v", want, got)
	}
}

func TestViewProjectionIsNotIdentity(t *testing.T) {
	o := New(mgl32.Vec3{0, 0, 0}, 16.0/9.0)
	vp := o.ViewProjection()
	if vp == (mgl32.Mat4{}) {
		t.Fatal("expected a populated view-projection matrix")
	}
}
