package dh

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/armkin/core"
)

// Transform is a 4×4 homogeneous transform: a rotation in the top-left
// 3×3 block and a translation in column 3. Obtain values from New,
// Identity or Mul; the zero Transform has no backing matrix.
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform, the neutral element of Mul.
func Identity() Transform {
	return Transform{m: mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})}
}

// New builds the DH transform of one joint for the commanded variable q.
// Revolute joints add q to Theta0; prismatic joints add q to D.
func New(spec core.JointSpec, q float64) Transform {
	theta, d := spec.Theta0, spec.D
	if spec.Type == core.Prismatic {
		d += q
	} else {
		theta += q
	}
	st, ct := math.Sincos(theta)
	sa, ca := math.Sincos(spec.Alpha)
	a := spec.A
	return Transform{m: mat.NewDense(4, 4, []float64{
		ct, -st * ca, st * sa, a * ct,
		st, ct * ca, -ct * sa, a * st,
		0, sa, ca, d,
		0, 0, 0, 1,
	})}
}

// Mul returns the composition t·u: u expressed in t's frame.
func (t Transform) Mul(u Transform) Transform {
	var p mat.Dense
	p.Mul(t.m, u.m)
	return Transform{m: &p}
}

// At returns the matrix element in row i, column j.
func (t Transform) At(i, j int) float64 { return t.m.At(i, j) }

// Position returns the translation component of the transform.
func (t Transform) Position() core.Vec3 {
	return core.Vec3{X: t.m.At(0, 3), Y: t.m.At(1, 3), Z: t.m.At(2, 3)}
}

// Rotation returns the top-left 3×3 rotation block.
func (t Transform) Rotation() core.Rotation {
	var r core.Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = t.m.At(i, j)
		}
	}
	return r
}

// Pose extracts the position and orientation of the transform as a
// core.Pose in one call.
func (t Transform) Pose() core.Pose {
	return core.Pose{Position: t.Position(), Orientation: t.Rotation()}
}
