package dh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/dh"
)

const eps = 1e-12

// assertMatrix compares all 16 elements of a transform against want
// (row-major) within eps.
func assertMatrix(t *testing.T, want [16]float64, got dh.Transform) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, want[i*4+j], got.At(i, j), eps, "element (%d,%d)", i, j)
		}
	}
}

// TestNew_ZeroParameters verifies that an all-zero joint at q=0 yields
// the identity transform.
func TestNew_ZeroParameters(t *testing.T) {
	got := dh.New(core.JointSpec{}, 0)
	assertMatrix(t, [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, got)
}

// TestNew_TranslationOnly checks that a and d land in the translation
// column with no rotation.
func TestNew_TranslationOnly(t *testing.T) {
	got := dh.New(core.JointSpec{D: 0.5, A: 0.7}, 0)
	assertMatrix(t, [16]float64{
		1, 0, 0, 0.7,
		0, 1, 0, 0,
		0, 0, 1, 0.5,
		0, 0, 0, 1,
	}, got)
}

// TestNew_QuarterTurn checks the full matrix for θ=π/2, α=π/2 — every
// trigonometric slot exercised with exact 0/±1 values.
func TestNew_QuarterTurn(t *testing.T) {
	got := dh.New(core.JointSpec{A: 2, Alpha: math.Pi / 2}, math.Pi/2)
	assertMatrix(t, [16]float64{
		0, 0, 1, 0,
		1, 0, 0, 2,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}, got)
}

// TestNew_RevoluteAddsVariableToTheta verifies θ = Theta0 + q for
// revolute joints.
func TestNew_RevoluteAddsVariableToTheta(t *testing.T) {
	split := dh.New(core.JointSpec{Theta0: 0.3}, 0.4)
	whole := dh.New(core.JointSpec{Theta0: 0.7}, 0)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, whole.At(i, j), split.At(i, j), eps)
		}
	}
}

// TestNew_PrismaticAddsVariableToD verifies d = D + q for prismatic
// joints, with θ untouched by the variable.
func TestNew_PrismaticAddsVariableToD(t *testing.T) {
	got := dh.New(core.JointSpec{Theta0: 0.3, D: 0.1, Type: core.Prismatic}, 0.25)
	assert.InDelta(t, 0.35, got.At(2, 3), eps, "variable must ride the d term")
	assert.InDelta(t, math.Cos(0.3), got.At(0, 0), eps, "theta must stay at Theta0")
}

// TestMul_Identity verifies Identity is neutral on both sides.
func TestMul_Identity(t *testing.T) {
	tr := dh.New(core.JointSpec{Theta0: 0.4, D: 0.2, A: 0.6, Alpha: 1.1}, 0.5)
	left := dh.Identity().Mul(tr)
	right := tr.Mul(dh.Identity())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, tr.At(i, j), left.At(i, j), eps)
			assert.InDelta(t, tr.At(i, j), right.At(i, j), eps)
		}
	}
}

// TestMul_ChainsTranslations verifies composition order: translations of
// untwisted links accumulate along X.
func TestMul_ChainsTranslations(t *testing.T) {
	a := dh.New(core.JointSpec{A: 0.2}, 0)
	b := dh.New(core.JointSpec{A: 0.3}, 0)
	p := a.Mul(b).Position()
	assert.InDelta(t, 0.5, p.X, eps)
	assert.InDelta(t, 0.0, p.Y, eps)
	assert.InDelta(t, 0.0, p.Z, eps)
}

// TestPose_Extraction verifies Position is column 3 and Rotation the
// top-left block of the same matrix.
func TestPose_Extraction(t *testing.T) {
	tr := dh.New(core.JointSpec{Theta0: 0.9, D: 0.4, A: 0.8, Alpha: 0.6}, 0.1)
	pose := tr.Pose()

	assert.Equal(t, tr.Position(), pose.Position)
	assert.Equal(t, tr.Rotation(), pose.Orientation)
	assert.InDelta(t, tr.At(0, 3), pose.Position.X, eps)
	assert.InDelta(t, tr.At(1, 3), pose.Position.Y, eps)
	assert.InDelta(t, tr.At(2, 3), pose.Position.Z, eps)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, tr.At(i, j), pose.Orientation[i][j], eps)
		}
	}
}

// TestRotation_Orthonormal verifies the rotation block of any DH
// transform has orthonormal rows.
func TestRotation_Orthonormal(t *testing.T) {
	r := dh.New(core.JointSpec{Theta0: 1.2, Alpha: -0.7}, 0.3).Rotation()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot float64
			for k := 0; k < 3; k++ {
				dot += r[i][k] * r[j][k]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, dot, eps, "rows %d,%d", i, j)
		}
	}
}
