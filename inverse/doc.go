// Package inverse searches joint-angle space for configurations that
// place a three-revolute-joint arm's end-effector at a target position,
// and answers reachability queries on top of that search.
//
// Capability gap (by contract, not error): Solve only operates on
// configurations with exactly three revolute joints. Any other chain
// yields Result{Valid: false} immediately with a nil error.
//
// Algorithm Outline:
//  1. Read the link lengths a1,a2,a3 (A fields) and vertical offsets
//     d1,d2 (D fields of joints 0 and 1).
//  2. Fast rejection: planar radius r = √(x²+y²) beyond a1+a2+a3 can
//     never be reached — return the invalid Result at once.
//  3. Elbow-down sweep: fold over θ1 samples covering [0, 2π) at Step.
//     For each θ1 place the shoulder at (a1·cosθ1, a1·sinθ1, d1+d2),
//     derive θ3 and the shoulder angle θ2 from the law of cosines on the
//     shoulder→target segment, verify the triple through forward
//     kinematics, and keep the candidate with the strictly smallest
//     position error (first-found wins ties). The sweep's best candidate
//     is accepted unconditionally, however large its error.
//  4. Elbow-up sweep: repeat with θ3 negated; accept the best candidate
//     only when its error is below ElbowUpTolerance.
//  5. No surviving candidate at all → Result{Valid: false}, nil error.
//
// The asymmetry between steps 3 and 4 — unconditional acceptance for
// elbow-down, tolerance-gated for elbow-up — is deliberate: the first
// branch always reports the best pose the sweep could find, while the
// second only adds a solution when it lands essentially on target.
//
// Unreachable targets are a normal result value, never an error. The
// error channel is reserved for caller mistakes: nil config, bad Step,
// bad ElbowUpTolerance.
//
// Step (default 1°) trades accuracy for time: each sweep runs 2π/Step
// iterations, each paying one forward-kinematics verification. The sweep
// is sequential so that the first-found-wins tie-break is reproducible
// across runs.
//
// Tracing: Options.Logger receives structured rejection/acceptance events
// and defaults to zerolog.Nop(), keeping the hot loop decoupled from any
// particular logging setup.
package inverse
