// Package core: joint, pose and vector value types.
//
// This file declares JointType, Limit, JointSpec, Rotation and Pose.
// RobotConfig and its constructor live in config.go; Vec3 in vec3.go.
package core

import "fmt"

// JointType distinguishes how the commanded joint variable enters the
// DH transform of a joint.
//
//   - Revolute  — the variable is an angle added to Theta0.
//   - Prismatic — the variable is a displacement added to D.
type JointType int

const (
	// Revolute joints rotate about the local Z axis.
	Revolute JointType = iota

	// Prismatic joints translate along the local Z axis.
	Prismatic
)

// String returns the canonical lowercase name of the joint type.
func (t JointType) String() string {
	switch t {
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	default:
		return fmt.Sprintf("jointtype(%d)", int(t))
	}
}

// ParseJointType maps the canonical names "revolute" and "prismatic"
// onto their JointType values. Unknown names yield ErrBadJointType.
func ParseJointType(s string) (JointType, error) {
	switch s {
	case "revolute":
		return Revolute, nil
	case "prismatic":
		return Prismatic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadJointType, s)
	}
}

// Limit is the stored motion range of one joint, in radians for revolute
// joints and length units for prismatic joints. Limits are informational:
// the solvers never read them; ClampToLimits applies them on request.
type Limit struct {
	Min float64
	Max float64
}

// JointSpec is one row of the Denavit–Hartenberg table plus the joint's
// type and stored limit.
//
//	Theta0 — joint angle offset (radians); the commanded variable is
//	         added to it for revolute joints.
//	D      — offset along the previous Z axis; the commanded variable is
//	         added to it for prismatic joints.
//	A      — link length along the common normal.
//	Alpha  — link twist about the common normal (radians).
type JointSpec struct {
	Theta0 float64
	D      float64
	A      float64
	Alpha  float64
	Type   JointType
	Limit  Limit
}

// Rotation is a 3×3 orthonormal rotation matrix in row-major order.
type Rotation [3][3]float64

// Pose is the result of forward kinematics: the end-effector position and
// orientation expressed in the base frame. Pose values are created fresh
// per call and never shared or mutated.
type Pose struct {
	Position    Vec3
	Orientation Rotation
}
