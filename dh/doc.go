// Package dh builds and composes 4×4 homogeneous Denavit–Hartenberg
// transforms, the geometric primitive under both kinematics solvers.
//
// For one joint with parameters (θ₀, d, a, α) and commanded variable q,
// the standard DH transform is
//
//	[ cosθ   -sinθ·cosα    sinθ·sinα    a·cosθ ]
//	[ sinθ    cosθ·cosα   -cosθ·sinα    a·sinθ ]
//	[ 0       sinα         cosα         d      ]
//	[ 0       0             0           1      ]
//
// where θ = θ₀ + q for revolute joints. For prismatic joints the variable
// rides the translation instead: θ = θ₀ and d = D + q.
//
// New is a pure, total function — every (JointSpec, q) pair yields a
// transform, no failure modes. Transform values compose with Mul in chain
// order and expose Position (column 3, rows 0–2) and Rotation (top-left
// 3×3 block) for pose extraction.
//
// Storage is a gonum mat.Dense; Mul delegates to gonum's dense multiply.
// Always obtain Transform values from New, Identity or Mul — the zero
// Transform has no backing matrix.
package dh
