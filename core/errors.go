package core

import "errors"

// Sentinel errors for robot configuration and joint-vector validation.
// Constructors and solvers wrap these with fmt.Errorf("...: %w", ...) where
// extra context helps; callers match with errors.Is.
var (
	// ErrNoJoints indicates a robot description with zero joints.
	ErrNoJoints = errors.New("core: robot has no joints")

	// ErrNonFinite indicates a NaN or ±Inf DH parameter or limit bound.
	ErrNonFinite = errors.New("core: non-finite joint parameter")

	// ErrBadLimit indicates a joint limit whose Min exceeds its Max.
	ErrBadLimit = errors.New("core: joint limit min exceeds max")

	// ErrJointIndex indicates a joint index outside [0, NumJoints).
	ErrJointIndex = errors.New("core: joint index out of range")

	// ErrJointCount indicates a joint-angle vector whose length does not
	// match the configured joint count. This is a caller programming
	// error; it is propagated immediately and never recovered internally.
	ErrJointCount = errors.New("core: joint angle count mismatch")

	// ErrBadJointType indicates an unknown joint type name.
	ErrBadJointType = errors.New("core: unknown joint type")
)
