// Package armkin computes serial-manipulator kinematics from
// Denavit–Hartenberg chain descriptions — forward pose evaluation for
// arbitrary chains, and a grid-search inverse solver for three-revolute
// arms.
//
// 🚀 What is armkin?
//
//	A small engine answering the two classic arm questions:
//	  • forward:  given joint angles, where is the end-effector?
//	  • inverse:  given a target position, which joint angles reach it?
//	plus a reachability predicate and a workspace-radius estimate.
//
// ✨ Why choose armkin?
//
//   - Immutable configuration — build a core.RobotConfig once, share it
//     across goroutines, no locking
//   - Explicit failure channels — unreachable targets are a result value,
//     never an error; only malformed calls error out
//   - Structured, optional tracing in the inverse sweep (zerolog)
//   - Bundled, embedded robot descriptions selected by name
//
// Everything is organized under focused subpackages:
//
//	core/    — JointSpec, RobotConfig, Pose, Vec3, shared sentinels
//	dh/      — 4×4 homogeneous DH transforms (gonum-backed)
//	forward/ — transform-chain composition to an end-effector Pose
//	inverse/ — three-revolute grid-search solver + reachability
//	robots/  — embedded YAML robot descriptions, loaded by name
//	cmd/     — armkin demo CLI exercising the engine surface
//
// Quick taste:
//
//	cfg, _ := robots.Load("threelink")
//	pose, _ := forward.Solve(cfg, []float64{0, 0, 0})
//	res, _ := inverse.Solve(cfg, core.Vec3{X: 0.75, Z: 0.3}, nil)
//
// See each subpackage's doc.go for algorithm outlines and contracts.
package armkin
