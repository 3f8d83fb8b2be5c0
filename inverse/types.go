// Package inverse: result type, configuration options and sentinel errors.
package inverse

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the inverse solver. All cover caller
// mistakes; "no solution found" is expressed through Result.Valid, never
// through the error channel.
var (
	// ErrNilConfig indicates that a nil *core.RobotConfig was passed in.
	ErrNilConfig = errors.New("inverse: robot config is nil")

	// ErrBadStep indicates a non-positive angular step.
	ErrBadStep = errors.New("inverse: angular step must be positive")

	// ErrBadTolerance indicates a non-positive elbow-up tolerance.
	ErrBadTolerance = errors.New("inverse: elbow-up tolerance must be positive")
)

// Defaults for Options; DefaultOptions reflects exactly these.
const (
	// DefaultStep is the θ1 sweep resolution: one degree. A tunable
	// accuracy/performance trade-off, not a physical constant.
	DefaultStep = math.Pi / 180

	// DefaultElbowUpTolerance is the position-error gate applied to the
	// elbow-up branch only (length units).
	DefaultElbowUpTolerance = 0.1
)

// Options configures the inverse solver.
//
// Fields:
//   - Step             — θ1 sweep resolution in radians; must be > 0.
//     Finer steps lower the achievable error at the cost of a longer
//     sweep (2π/Step forward-kinematics verifications per branch).
//   - ElbowUpTolerance — maximum position error under which the elbow-up
//     branch's best candidate is accepted; must be > 0. The elbow-down
//     branch is never gated.
//   - Logger           — receives structured trace events (rejections,
//     branch summaries). Defaults to zerolog.Nop(); tracing is advisory
//     only and not part of the functional contract.
type Options struct {
	Step             float64
	ElbowUpTolerance float64
	Logger           zerolog.Logger
}

// DefaultOptions returns the documented defaults with tracing disabled.
func DefaultOptions() Options {
	return Options{
		Step:             DefaultStep,
		ElbowUpTolerance: DefaultElbowUpTolerance,
		Logger:           zerolog.Nop(),
	}
}

// Result is the outcome of one inverse-kinematics query: zero, one or two
// joint-angle candidates. Invariant: Valid == (len(Solutions) > 0).
// When two solutions are present, Solutions[0] is the elbow-down branch
// and Solutions[1] the elbow-up branch.
type Result struct {
	Solutions [][]float64
	Valid     bool
}
