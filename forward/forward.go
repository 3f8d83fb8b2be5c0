package forward

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/dh"
)

// ErrNilConfig indicates that a nil *core.RobotConfig was passed in.
var ErrNilConfig = errors.New("forward: robot config is nil")

// Solve composes the DH transforms of all joints for the given joint
// angles and returns the resulting end-effector pose in the base frame.
//
// A joint-angle count that does not match the configuration fails with
// core.ErrJointCount (wrapped with the expected/got counts); this is a
// caller programming error and is never recovered internally.
func Solve(cfg *core.RobotConfig, angles []float64) (core.Pose, error) {
	if cfg == nil {
		return core.Pose{}, ErrNilConfig
	}
	if err := cfg.CheckAngles(angles); err != nil {
		return core.Pose{}, fmt.Errorf("forward: %w", err)
	}
	t := dh.Identity()
	for i, spec := range cfg.Joints() {
		t = t.Mul(dh.New(spec, angles[i]))
	}
	return t.Pose(), nil
}

// Chain returns the cumulative base-frame transform after each joint:
// element i is the composition of joints 0..i. Renderers use it to place
// every intermediate joint, not just the end-effector.
//
// The same joint-angle count rule as Solve applies.
func Chain(cfg *core.RobotConfig, angles []float64) ([]dh.Transform, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.CheckAngles(angles); err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	t := dh.Identity()
	chain := make([]dh.Transform, 0, cfg.NumJoints())
	for i, spec := range cfg.Joints() {
		t = t.Mul(dh.New(spec, angles[i]))
		chain = append(chain, t)
	}
	return chain, nil
}
