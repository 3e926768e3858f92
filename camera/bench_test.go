// Package camera_test provides benchmarks for the per-frame camera updates.
package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/katalvlaran/uvncam/camera"
	"github.com/katalvlaran/uvncam/linalg"
)

// sinks to defeat dead-code elimination
var (
	sinkU mgl32.Mat4
	sinkA []float64
)

func benchCamera(b *testing.B) *camera.Camera {
	b.Helper()
	c, err := camera.New(linalg.Vector3{0, 1, -5}, linalg.UnitZ(), linalg.UnitY())
	if err != nil {
		b.Fatal(err)
	}

	return c
}

func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	c := benchCamera(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Rotate(linalg.Vector2{0.5, 0.25})
		sinkU = c.Uniform()
	}
}

func BenchmarkForward(b *testing.B) {
	b.ReportAllocs()
	c := benchCamera(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Forward(1.0 / 60)
		sinkA = c.ViewArray()
	}
}
