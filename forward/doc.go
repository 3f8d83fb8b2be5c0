// Package forward computes the end-effector pose of a serial manipulator
// from its joint angles.
//
// Algorithm Outline:
//  1. Validate len(angles) == cfg.NumJoints(); mismatch is the hard
//     core.ErrJointCount failure ("expected N joint angles, got M").
//  2. Build one DH transform per joint via dh.New, feeding each joint its
//     commanded angle.
//  3. Compose left-to-right in chain order: joint i's transform is
//     expressed relative to joint i−1's frame, chained from the base.
//  4. Read the Pose off the final transform: position from column 3,
//     orientation from the top-left 3×3 block.
//
// Solve is deterministic and side-effect free: identical inputs always
// yield identical outputs modulo floating-point rounding.
//
// Chain returns the cumulative base-frame transform after every joint,
// which is what renderers need to draw the intermediate joints.
//
// Complexity:
//
//	Time:   O(N) 4×4 multiplies for N joints
//	Memory: O(1) for Solve, O(N) for Chain
package forward
