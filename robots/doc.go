// Package robots ships a small fixed set of ready-made robot
// descriptions and loads them by name into core.RobotConfig values.
//
// Each description is a YAML record embedded at build time:
//
//	name: threelink
//	description: ...
//	dhParameters:          # one row per joint: theta, d, a, alpha
//	  - { theta: 0, d: 0.1, a: 0.2, alpha: 0 }
//	jointLimits:           # one min/max pair per joint
//	  - { min: -3.1415, max: 3.1415 }
//	jointTypes: [revolute] # revolute | prismatic, one per joint
//	baseOffset: { x: 0, y: 0, z: 0 }
//	toolOffset: { x: 0, y: 0, z: 0 }
//
// The record invariant len(dhParameters) == len(jointLimits) ==
// len(jointTypes) is enforced at load time (ErrBadDescription); the
// resulting RobotConfig bundles the three lists joint-by-joint so the
// invariant cannot drift afterwards.
//
// Bundled set: threelink (3R articulated arm), scara (RRPR), sixaxis (6R).
package robots
