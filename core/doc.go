// Package core defines the shared value types of the armkin kinematics
// library: the Denavit–Hartenberg joint description, the immutable
// RobotConfig built once from it, and the Pose produced by the solvers.
//
// The central object is RobotConfig:
//
//   - Constructed once via New(joints, opts...) and never mutated after.
//   - Solvers (forward, inverse) hold it by reference and own no mutable
//     copy, so a single config may be shared across goroutines without
//     locking.
//   - Joint limits are stored for callers (UIs, planners) but are never
//     enforced by the solvers; ClampToLimits is the caller-side helper.
//
// Configuration Options (Option):
//
//	– WithName(name)            robot display name
//	– WithDescription(desc)     free-form description
//	– WithBaseOffset(v)         base mounting offset (informational)
//	– WithToolOffset(v)         tool tip offset (informational)
//
// Base and tool offsets are carried for consumers that draw or annotate
// the robot; they are not applied to the computed transform chain.
//
// Errors (sentinel, matched via errors.Is):
//
//	– ErrNoJoints     robot described with zero joints
//	– ErrNonFinite    NaN or ±Inf in a DH parameter or limit
//	– ErrBadLimit     joint limit with Min > Max
//	– ErrJointIndex   joint index outside [0, NumJoints)
//	– ErrJointCount   joint-angle vector length != NumJoints
//	– ErrBadJointType unknown joint type name
//
// ErrJointCount is the library's single hard "structural" failure: it
// always means a caller programming error and is never recovered
// internally.
package core
