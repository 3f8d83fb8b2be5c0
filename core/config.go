// Package core: RobotConfig construction, validation and accessors.
package core

import (
	"fmt"
	"math"
)

// RobotConfig is the immutable description of a serial manipulator: an
// ordered sequence of DH joints plus informational base/tool offsets.
// Build it once with New; all fields are unexported and every accessor
// returns copies, so a RobotConfig shared between goroutines needs no
// synchronization.
type RobotConfig struct {
	name        string
	description string
	joints      []JointSpec
	baseOffset  Vec3
	toolOffset  Vec3
}

// Option configures a RobotConfig during construction.
type Option func(*RobotConfig)

// WithName sets the robot's display name.
func WithName(name string) Option {
	return func(c *RobotConfig) { c.name = name }
}

// WithDescription sets the robot's free-form description.
func WithDescription(desc string) Option {
	return func(c *RobotConfig) { c.description = desc }
}

// WithBaseOffset records the base mounting offset. The offset is carried
// for consumers (renderers, annotations) and is not applied to the
// computed transform chain.
func WithBaseOffset(v Vec3) Option {
	return func(c *RobotConfig) { c.baseOffset = v }
}

// WithToolOffset records the tool tip offset. Informational only, like
// WithBaseOffset.
func WithToolOffset(v Vec3) Option {
	return func(c *RobotConfig) { c.toolOffset = v }
}

// New validates joints and builds an immutable RobotConfig.
//
// Validation per joint i:
//   - all DH parameters and limit bounds finite, else ErrNonFinite;
//   - Limit.Min <= Limit.Max, else ErrBadLimit.
//
// An empty joint list yields ErrNoJoints. The input slice is copied; the
// caller may reuse it freely afterwards.
func New(joints []JointSpec, opts ...Option) (*RobotConfig, error) {
	if len(joints) == 0 {
		return nil, ErrNoJoints
	}
	for i, j := range joints {
		for _, v := range [...]float64{j.Theta0, j.D, j.A, j.Alpha, j.Limit.Min, j.Limit.Max} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("joint %d: %w", i, ErrNonFinite)
			}
		}
		if j.Limit.Min > j.Limit.Max {
			return nil, fmt.Errorf("joint %d: %w", i, ErrBadLimit)
		}
	}
	cfg := &RobotConfig{joints: append([]JointSpec(nil), joints...)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// Name returns the robot's display name.
func (c *RobotConfig) Name() string { return c.name }

// Description returns the robot's free-form description.
func (c *RobotConfig) Description() string { return c.description }

// BaseOffset returns the stored base mounting offset.
func (c *RobotConfig) BaseOffset() Vec3 { return c.baseOffset }

// ToolOffset returns the stored tool tip offset.
func (c *RobotConfig) ToolOffset() Vec3 { return c.toolOffset }

// NumJoints returns the number of joints in the chain.
func (c *RobotConfig) NumJoints() int { return len(c.joints) }

// Joint returns the i-th joint specification.
func (c *RobotConfig) Joint(i int) (JointSpec, error) {
	if i < 0 || i >= len(c.joints) {
		return JointSpec{}, fmt.Errorf("joint %d of %d: %w", i, len(c.joints), ErrJointIndex)
	}
	return c.joints[i], nil
}

// Joints returns a copy of the joint sequence in chain order.
func (c *RobotConfig) Joints() []JointSpec {
	return append([]JointSpec(nil), c.joints...)
}

// CheckAngles verifies that a joint-angle vector matches the configured
// joint count. On mismatch it returns ErrJointCount wrapped with the
// expected/got counts. Every solver entry point runs this check first.
func (c *RobotConfig) CheckAngles(angles []float64) error {
	if len(angles) != len(c.joints) {
		return fmt.Errorf("expected %d joint angles, got %d: %w", len(c.joints), len(angles), ErrJointCount)
	}
	return nil
}

// WorkspaceRadius returns the exact sum of the link lengths (the A field)
// across all joints. It is a reach upper bound, not a precise workspace
// boundary: joint limits, base/tool offsets and vertical D offsets are
// not accounted for.
func (c *RobotConfig) WorkspaceRadius() float64 {
	var sum float64
	for _, j := range c.joints {
		sum += j.A
	}
	return sum
}

// ClampToLimits returns a copy of angles with each entry clamped into the
// stored limit of its joint. The solvers never call this; it exists for
// callers that want limit-respecting joint vectors (UIs, demo tooling).
func (c *RobotConfig) ClampToLimits(angles []float64) ([]float64, error) {
	if err := c.CheckAngles(angles); err != nil {
		return nil, err
	}
	out := append([]float64(nil), angles...)
	for i, j := range c.joints {
		if j.Limit.Min == 0 && j.Limit.Max == 0 {
			continue // unconstrained joint
		}
		if out[i] < j.Limit.Min {
			out[i] = j.Limit.Min
		} else if out[i] > j.Limit.Max {
			out[i] = j.Limit.Max
		}
	}
	return out, nil
}
