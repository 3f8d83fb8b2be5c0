package inverse

import (
	"math"

	"github.com/katalvlaran/armkin/core"
	"github.com/katalvlaran/armkin/forward"
)

// elbow selects the sign applied to θ3 in a sweep branch.
type elbow float64

const (
	elbowDown elbow = 1
	elbowUp   elbow = -1
)

func (e elbow) String() string {
	if e == elbowDown {
		return "elbow-down"
	}
	return "elbow-up"
}

// candidate is one verified (θ1, θ2, θ3) triple and its position error.
type candidate struct {
	angles []float64
	err    float64
}

// Solve searches for joint angles that place the end-effector at target.
//
// Only configurations with exactly three revolute joints are supported;
// any other chain returns Result{Valid: false} with a nil error — a
// declared capability gap, not a failure. Unreachable targets likewise
// surface as an invalid Result. The returned error covers caller
// mistakes only: ErrNilConfig, ErrBadStep, ErrBadTolerance.
//
// A nil opts uses DefaultOptions.
func Solve(cfg *core.RobotConfig, target core.Vec3, opts *Options) (Result, error) {
	if cfg == nil {
		return Result{}, ErrNilConfig
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Step <= 0 {
		return Result{}, ErrBadStep
	}
	if o.ElbowUpTolerance <= 0 {
		return Result{}, ErrBadTolerance
	}

	if !threeRevolute(cfg) {
		o.Logger.Debug().Int("joints", cfg.NumJoints()).
			Msg("inverse: not a three-revolute chain, declining")
		return Result{}, nil
	}

	joints := cfg.Joints()
	a1, a2, a3 := joints[0].A, joints[1].A, joints[2].A
	d1, d2 := joints[0].D, joints[1].D

	// Planar radius and height relative to the base; the height is
	// diagnostic only.
	r := math.Hypot(target.X, target.Y)
	h := target.Z - d1
	o.Logger.Debug().
		Float64("radius", r).Float64("height", h).
		Float64("reach", a1+a2+a3).
		Msg("inverse: query")

	// Fast rejection: beyond the summed link lengths nothing can reach.
	if r > a1+a2+a3 {
		o.Logger.Debug().Msg("inverse: target beyond maximum reach")
		return Result{}, nil
	}

	geo := geometry{
		cfg:    cfg,
		target: target,
		a1:     a1, a2: a2, a3: a3,
		shoulderZ: d1 + d2,
	}

	// Primary branch: elbow-down, best candidate accepted whatever its
	// error.
	down, ok := geo.sweep(elbowDown, &o)
	if !ok {
		o.Logger.Debug().Msg("inverse: no candidate survived the sweep")
		return Result{}, nil
	}
	solutions := [][]float64{down.angles}

	// Secondary branch: elbow-up, accepted only under the tolerance.
	// Unlike the primary branch it never carries a fallback candidate.
	if up, ok := geo.sweep(elbowUp, &o); ok {
		if up.err < o.ElbowUpTolerance {
			solutions = append(solutions, up.angles)
		} else {
			o.Logger.Debug().Float64("error", up.err).
				Float64("tolerance", o.ElbowUpTolerance).
				Msg("inverse: elbow-up candidate dropped")
		}
	}

	return Result{Solutions: solutions, Valid: true}, nil
}

// geometry carries the per-query constants of the sweep.
type geometry struct {
	cfg       *core.RobotConfig
	target    core.Vec3
	a1        float64
	a2        float64
	a3        float64
	shoulderZ float64
}

// sweep folds the θ1 sample sequence into the minimum-error candidate of
// one elbow branch. The accumulator keeps the strictly smallest error
// seen, so the first-found candidate wins ties; the fold is sequential to
// make that tie-break reproducible across runs.
func (g *geometry) sweep(branch elbow, o *Options) (candidate, bool) {
	best := candidate{err: math.Inf(1)}
	found := false
	for _, theta1 := range sweepSamples(o.Step) {
		c, ok := g.evaluate(theta1, branch)
		if !ok {
			continue
		}
		if c.err < best.err {
			best = c
			found = true
		}
	}
	if found {
		o.Logger.Debug().Str("branch", branch.String()).
			Float64("theta1", best.angles[0]).
			Float64("error", best.err).
			Msg("inverse: branch best candidate")
	}
	return best, found
}

// sweepSamples generates the θ1 samples covering [0, 2π) at step.
func sweepSamples(step float64) []float64 {
	n := int(math.Ceil(2 * math.Pi / step))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) * step
	}
	return samples
}

// evaluate derives and verifies the candidate for one θ1 sample. The
// boolean is false when this shoulder placement cannot reach the target
// (segment too long, or a law-of-cosines argument outside [-1, 1]).
func (g *geometry) evaluate(theta1 float64, branch elbow) (candidate, bool) {
	s1, c1 := math.Sincos(theta1)
	shoulder := core.Vec3{X: g.a1 * c1, Y: g.a1 * s1, Z: g.shoulderZ}

	delta := g.target.Sub(shoulder)
	l := delta.Norm()
	if l > g.a2+g.a3 {
		return candidate{}, false
	}

	// Elbow angle from the law of cosines on (a2, a3, L).
	cosElbow := (g.a2*g.a2 + g.a3*g.a3 - l*l) / (2 * g.a2 * g.a3)
	if cosElbow < -1 || cosElbow > 1 {
		return candidate{}, false
	}
	theta3 := float64(branch) * math.Acos(cosElbow)

	// Interior angle at the shoulder from the law of cosines on (a2, L, a3).
	cosAlpha := (g.a2*g.a2 + l*l - g.a3*g.a3) / (2 * g.a2 * l)
	if cosAlpha < -1 || cosAlpha > 1 {
		return candidate{}, false
	}
	alpha := math.Acos(cosAlpha)

	// Elevation of the shoulder→target segment.
	beta := math.Atan2(delta.Z, math.Hypot(delta.X, delta.Y))
	theta2 := beta - alpha

	angles := []float64{theta1, theta2, theta3}
	pose, err := forward.Solve(g.cfg, angles)
	if err != nil {
		// Unreachable: the candidate is always three angles for a
		// three-joint chain.
		return candidate{}, false
	}
	return candidate{angles: angles, err: pose.Position.Dist(g.target)}, true
}

// threeRevolute reports whether cfg is a chain of exactly three revolute
// joints, the only shape the analytic/grid search understands.
func threeRevolute(cfg *core.RobotConfig) bool {
	if cfg.NumJoints() != 3 {
		return false
	}
	for _, j := range cfg.Joints() {
		if j.Type != core.Revolute {
			return false
		}
	}
	return true
}
