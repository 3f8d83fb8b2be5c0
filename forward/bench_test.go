package forward_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/forward"
)

// benchmarkSolve composes the given chain at a fixed non-trivial pose.
// It resets the timer after setup and fails on caller-error conditions.
func benchmarkSolve(b *testing.B, joints []core.JointSpec) {
	cfg, err := core.New(joints)
	if err != nil {
		b.Fatalf("config failed: %v", err)
	}
	angles := make([]float64, len(joints))
	for i := range angles {
		angles[i] = 0.1 * float64(i+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := forward.Solve(cfg, angles); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_ThreeJoints measures a planar-style 3R chain.
func BenchmarkSolve_ThreeJoints(b *testing.B) {
	benchmarkSolve(b, []core.JointSpec{
		{D: 0.1, A: 0.2},
		{A: 0.3, Alpha: math.Pi / 2},
		{A: 0.2},
	})
}

// BenchmarkSolve_SixJoints measures an industrial-style 6R chain.
func BenchmarkSolve_SixJoints(b *testing.B) {
	benchmarkSolve(b, []core.JointSpec{
		{D: 0.33, A: 0.05, Alpha: math.Pi / 2},
		{A: 0.44},
		{A: 0.035, Alpha: math.Pi / 2},
		{D: 0.42, Alpha: -math.Pi / 2},
		{Alpha: math.Pi / 2},
		{D: 0.08},
	})
}

// BenchmarkChain_ThreeJoints measures the cumulative-transform variant,
// which allocates one transform per joint.
func BenchmarkChain_ThreeJoints(b *testing.B) {
	cfg, err := core.New([]core.JointSpec{
		{D: 0.1, A: 0.2},
		{A: 0.3, Alpha: math.Pi / 2},
		{A: 0.2},
	})
	if err != nil {
		b.Fatalf("config failed: %v", err)
	}
	angles := []float64{0.1, 0.2, 0.3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := forward.Chain(cfg, angles); err != nil {
			b.Fatalf("chain failed: %v", err)
		}
	}
}
