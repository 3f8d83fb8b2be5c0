package inverse

import "github.com/katalvlaran/armkin/core"

// Reachable reports whether Solve finds at least one joint configuration
// for target. It is a thin predicate over Solve's validity flag: there is
// no independent fast path beyond the solver's own maximum-reach
// rejection. Errors follow Solve's contract (caller mistakes only).
func Reachable(cfg *core.RobotConfig, target core.Vec3, opts *Options) (bool, error) {
	res, err := Solve(cfg, target, opts)
	if err != nil {
		return false, err
	}
	return res.Valid, nil
}
